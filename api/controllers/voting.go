package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/gin-gonic/gin"
)

type VotingController struct {
	codesStorage      storage.VotingCodeStorage
	votesStorage      storage.VoteStorage
	positionsStorage  storage.PositionStorage
	candidatesStorage storage.CandidateStorage
}

func NewVotingController(codeStorage storage.VotingCodeStorage, voteStorage storage.VoteStorage, positionStorage storage.PositionStorage, candidateStorage storage.CandidateStorage) *VotingController {
	return &VotingController{
		codesStorage:      codeStorage,
		votesStorage:      voteStorage,
		positionsStorage:  positionStorage,
		candidatesStorage: candidateStorage,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/verify/:code", c.validateVotingCode)
	group.GET("/ballot", c.getBallot)
	group.GET("/vote/:code", c.getVotesByCode)
}

// validateVotingCode godoc
// @Summary Validate a voting code
// @Description Checks if a voting code exists and returns its class and usage status
// @Tags voting
// @Produce json
// @Param code path string true "Voting Code"
// @Success 200 {object} models.CodeValidationResponse
// @Failure 400 {object} models.ErrorResponse "Missing code from request"
// @Failure 404 {object} models.ErrorResponse "Code not found in storage"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/verify/{code} [get]
func (c *VotingController) validateVotingCode(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code is required"})
		return
	}

	votingCode, err := c.codesStorage.Get(g.Request.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrCodeNotFound) {
			logging.Log.Errorf("code not found in storage: %s", code)
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("code not found in storage: %s", code)})
			return
		}

		logging.Log.Errorf("error trying to get code from storage: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: fmt.Sprintf("error trying to get code from storage: %v", err)})
		return
	}

	g.JSON(http.StatusOK, models.TransformVotingCodeToValidationResponse(votingCode))
}

// getBallot godoc
// @Summary Get the ballot
// @Description Returns the ordered positions with their candidates. Positions without candidates are omitted.
// @Tags voting
// @Produce json
// @Success 200 {object} models.BallotResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/ballot [get]
func (c *VotingController) getBallot(g *gin.Context) {
	positions, err := buildBallot(g.Request.Context(), c.positionsStorage, c.candidatesStorage)
	if err != nil {
		logging.Log.Errorf("failed to build ballot: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load ballot"})
		return
	}

	g.JSON(http.StatusOK, models.TransformBallotPositions(positions))
}

// getVotesByCode godoc
// @Summary Get votes by code
// @Description Retrieves all votes recorded for a code with position and candidate names
// @Tags voting
// @Produce json
// @Param code path string true "Voting Code"
// @Success 200 {object} models.GetVoteResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/vote/{code} [get]
func (c *VotingController) getVotesByCode(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code is required"})
		return
	}

	votes, err := c.votesStorage.GetByCode(g.Request.Context(), code)
	if err != nil {
		logging.Log.Errorf("failed to retrieve votes for code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not retrieve votes"})
		return
	}
	if len(votes) == 0 {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no votes found for the given code"})
		return
	}

	positions, err := c.positionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("failed to load positions: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load positions"})
		return
	}

	candidates, err := c.candidatesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("failed to load candidates: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load candidates"})
		return
	}

	positionMap := make(map[string]string)
	for _, p := range positions {
		positionMap[p.ID] = p.Title
	}

	candidateMap := make(map[string]string)
	for _, cand := range candidates {
		candidateMap[cand.ID] = cand.Name
	}

	response := models.GetVoteResponse{
		Code:  code,
		Votes: make([]models.GetVoteEntry, 0, len(votes)),
	}

	for _, v := range votes {
		response.Votes = append(response.Votes, models.GetVoteEntry{
			PositionID:    v.PositionID,
			PositionTitle: positionMap[v.PositionID],
			CandidateID:   v.CandidateID,
			CandidateName: candidateMap[v.CandidateID],
			Valid:         v.Valid,
			Timestamp:     v.Timestamp,
		})
	}

	g.JSON(http.StatusOK, response)
}

// buildBallot assembles the ordered ballot handed to a session. Positions
// with no candidates are filtered out before they reach the state machine.
func buildBallot(ctx context.Context, positionStorage storage.PositionStorage, candidateStorage storage.CandidateStorage) ([]ballot.Position, error) {
	positions, err := positionStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := candidateStorage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byPosition := make(map[string][]ballot.Candidate)
	for _, c := range candidates {
		byPosition[c.PositionID] = append(byPosition[c.PositionID], ballot.Candidate{
			ID:     c.ID,
			Name:   c.Name,
			Email:  c.Email,
			Photo:  c.Photo,
			Class:  c.Class,
			Stream: c.Stream,
		})
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Order < positions[j].Order
	})

	out := make([]ballot.Position, 0, len(positions))
	for _, p := range positions {
		cands := byPosition[p.ID]
		if len(cands) == 0 {
			continue
		}
		out = append(out, ballot.Position{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Candidates:  cands,
		})
	}
	return out, nil
}
