package models

import "github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"

type CandidateCreateRequest struct {
	ID         string `json:"id"`
	PositionID string `json:"positionId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Photo      string `json:"photo"`
	Class      string `json:"class"`
	Stream     string `json:"stream"`
}

type CandidateUpdateRequest struct {
	PositionID string `json:"positionId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Photo      string `json:"photo"`
	Class      string `json:"class"`
	Stream     string `json:"stream"`
}

type CandidateResponse struct {
	ID         string `json:"id"`
	PositionID string `json:"positionId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Photo      string `json:"photo,omitempty"`
	Class      string `json:"class"`
	Stream     string `json:"stream"`
}

func TransformCandidateFromStorage(c *storage.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:         c.ID,
		PositionID: c.PositionID,
		Name:       c.Name,
		Email:      c.Email,
		Photo:      c.Photo,
		Class:      c.Class,
		Stream:     c.Stream,
	}
}
