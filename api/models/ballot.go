package models

import "github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"

type BallotCandidate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Photo  string `json:"photo,omitempty"`
	Class  string `json:"class"`
	Stream string `json:"stream"`
}

type BallotPosition struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Candidates  []BallotCandidate `json:"candidates"`
}

type BallotResponse struct {
	Positions []BallotPosition `json:"positions"`
}

func TransformBallotPositions(positions []ballot.Position) BallotResponse {
	response := BallotResponse{Positions: make([]BallotPosition, 0, len(positions))}
	for _, p := range positions {
		bp := BallotPosition{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Candidates:  make([]BallotCandidate, 0, len(p.Candidates)),
		}
		for _, c := range p.Candidates {
			bp.Candidates = append(bp.Candidates, BallotCandidate{
				ID:     c.ID,
				Name:   c.Name,
				Email:  c.Email,
				Photo:  c.Photo,
				Class:  c.Class,
				Stream: c.Stream,
			})
		}
		response.Positions = append(response.Positions, bp)
	}
	return response
}
