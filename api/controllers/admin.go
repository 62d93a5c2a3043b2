package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/transport"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AdminController struct {
	codesStorage      storage.VotingCodeStorage
	votesStorage      storage.VoteStorage
	positionsStorage  storage.PositionStorage
	candidatesStorage storage.CandidateStorage
}

func NewAdminController(codeStorage storage.VotingCodeStorage, voteStorage storage.VoteStorage, positionStorage storage.PositionStorage, candidateStorage storage.CandidateStorage) *AdminController {
	return &AdminController{
		codesStorage:      codeStorage,
		votesStorage:      voteStorage,
		positionsStorage:  positionStorage,
		candidatesStorage: candidateStorage,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/codes", c.listCodes)
	group.POST("/codes", c.createCode)
	group.DELETE("/codes/:code", c.deleteCode)
	group.POST("/codes/reset", c.resetCodes)
	group.GET("/codes/:class", c.getCodesByClass)
	group.GET("/classes", c.listClasses)
	group.GET("/results", c.computeVoteResults)
	group.POST("/votes/cleanup", c.cleanupVotes)
	group.DELETE("/votes", c.deleteVotes)
}

// @Security AdminToken
// listCodes godoc
// @Summary List all voting codes
// @Tags admin
// @Produce json
// @Success 200 {array} models.CodeResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes [get]
func (c *AdminController) listCodes(g *gin.Context) {
	codes, err := c.codesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list codes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.CodeResponse, 0, len(codes))
	for _, code := range codes {
		responses = append(responses, models.TransformVotingCodeFromStorage(code))
	}
	logging.Log.Infof("ADMIN: listed %d codes", len(responses))
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// createCode godoc
// @Summary Create one or more voting codes for a class
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateCodeRequest true "Create Code Request"
// @Success 200 {array} models.CodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes [post]
func (c *AdminController) createCode(g *gin.Context) {
	var req models.CreateCodeRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Class == "" || req.Count < 1 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, missing class or count"})
		return
	}

	if _, ok := models.ValidClasses[models.VoterClass(req.Class)]; !ok {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid class"})
		logging.Log.Warnf("ADMIN: attempted to create code with invalid class: %s", req.Class)
		return
	}

	codes := make([]models.CodeResponse, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		code := &storage.VotingCode{
			Code:      c.generateShortCode(),
			Class:     req.Class,
			CreatedAt: time.Now().UTC(),
			Used:      false,
		}
		if err := c.codesStorage.Put(g.Request.Context(), code); err == nil {
			logging.Log.Infof("ADMIN: created code: %s for class %s", code.Code, code.Class)
			codes = append(codes, models.TransformVotingCodeFromStorage(code))
		} else {
			logging.Log.Errorf("ADMIN: failed to store code: %v", err)
		}
	}

	g.JSON(http.StatusOK, codes)
}

// @Security AdminToken
// deleteCode godoc
// @Summary Delete a voting code by its value
// @Tags admin
// @Produce json
// @Param code path string true "Voting code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes/{code} [delete]
func (c *AdminController) deleteCode(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	if err := c.codesStorage.Delete(g.Request.Context(), code); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: deleted code: %s", code)
	g.JSON(http.StatusOK, gin.H{"deleted": code})
}

// @Security AdminToken
// resetCodes godoc
// @Summary Reset all voting codes to unused
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes/reset [post]
func (c *AdminController) resetCodes(g *gin.Context) {
	codes, err := c.codesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to get codes for reset: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated := 0
	for _, code := range codes {
		if err := c.codesStorage.MarkUnused(g.Request.Context(), code.Code); err != nil {
			logging.Log.Errorf("ADMIN: failed to reset code %s: %v", code.Code, err)
		} else {
			updated++
		}
	}

	logging.Log.Infof("ADMIN: reset %d codes", updated)
	g.JSON(http.StatusOK, gin.H{"message": "All codes reset"})
}

// @Security AdminToken
// getCodesByClass godoc
// @Summary List voting codes by class
// @Tags admin
// @Produce json
// @Param class path string true "Voter class"
// @Success 200 {array} models.CodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes/{class} [get]
func (c *AdminController) getCodesByClass(g *gin.Context) {
	class := g.Param("class")
	if _, ok := models.ValidClasses[models.VoterClass(class)]; !ok {
		logging.Log.Warnf("ADMIN: invalid class requested: %s", class)
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid class"})
		return
	}

	all, err := c.codesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to get codes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := make([]models.CodeResponse, 0)
	for _, code := range all {
		if code.Class == class {
			filtered = append(filtered, models.TransformVotingCodeFromStorage(code))
		}
	}

	logging.Log.Infof("ADMIN: listed %d codes for class: %s", len(filtered), class)
	g.JSON(http.StatusOK, filtered)
}

// @Security AdminToken
// listClasses godoc
// @Summary List all voter classes
// @Tags admin
// @Produce json
// @Success 200 {array} map[string]string
// @Router /api/admin/classes [get]
func (c *AdminController) listClasses(g *gin.Context) {
	classes := make([]gin.H, 0, len(models.ValidClasses))
	for k, label := range models.ValidClasses {
		classes = append(classes, gin.H{
			"key":   string(k),
			"label": label,
		})
	}
	logging.Log.Infof("ADMIN: listed %d classes", len(classes))
	g.JSON(http.StatusOK, classes)
}

// @Security AdminToken
// computeVoteResults godoc
// @Summary Tally valid votes per position and candidate
// @Tags admin
// @Produce json
// @Success 200 {object} models.VoteResultsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/results [get]
func (c *AdminController) computeVoteResults(g *gin.Context) {
	votes, err := c.votesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to load votes: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load votes"})
		return
	}

	positions, err := c.positionsStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to load positions: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load positions"})
		return
	}

	candidates, err := c.candidatesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to load candidates: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load candidates"})
		return
	}

	candidateNames := make(map[string]string, len(candidates))
	for _, cand := range candidates {
		candidateNames[cand.ID] = cand.Name
	}

	// Votes flagged invalid (no location data at submission) are excluded.
	tallies := make(map[string]map[string]int)
	for _, v := range votes {
		if !v.Valid {
			continue
		}
		if tallies[v.PositionID] == nil {
			tallies[v.PositionID] = make(map[string]int)
		}
		tallies[v.PositionID][v.CandidateID]++
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Order < positions[j].Order
	})

	response := models.VoteResultsResponse{Results: make([]models.PositionResult, 0, len(positions))}
	for _, p := range positions {
		result := models.PositionResult{
			PositionID:    p.ID,
			PositionTitle: p.Title,
			Candidates:    make([]models.CandidateTally, 0, len(tallies[p.ID])),
		}
		for candidateID, count := range tallies[p.ID] {
			result.Candidates = append(result.Candidates, models.CandidateTally{
				CandidateID:   candidateID,
				CandidateName: candidateNames[candidateID],
				Votes:         count,
			})
		}
		sort.SliceStable(result.Candidates, func(i, j int) bool {
			if result.Candidates[i].Votes != result.Candidates[j].Votes {
				return result.Candidates[i].Votes > result.Candidates[j].Votes
			}
			return result.Candidates[i].CandidateID < result.Candidates[j].CandidateID
		})
		response.Results = append(response.Results, result)
	}

	g.JSON(http.StatusOK, response)
}

// @Security AdminToken
// cleanupVotes godoc
// @Summary Remove duplicate votes
// @Description Keeps the earliest vote per code and position and deletes the rest
// @Tags admin
// @Produce json
// @Success 200 {object} models.CleanupResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/votes/cleanup [post]
func (c *AdminController) cleanupVotes(g *gin.Context) {
	votes, err := c.votesStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to load votes for cleanup: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load votes"})
		return
	}

	grouped := make(map[string][]*storage.Vote)
	for _, v := range votes {
		key := v.Code + "/" + v.PositionID
		grouped[key] = append(grouped[key], v)
	}

	removed := 0
	for _, group := range grouped {
		if len(group) < 2 {
			continue
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Timestamp.Before(group[j].Timestamp)
		})
		for _, dup := range group[1:] {
			if err := c.votesStorage.Delete(g.Request.Context(), dup.Code, dup.SortKey); err != nil {
				logging.Log.Errorf("ADMIN: failed to delete duplicate vote %s/%s: %v", dup.Code, dup.SortKey, err)
				continue
			}
			removed++
		}
	}

	logging.Log.Infof("ADMIN: cleanup removed %d duplicate votes", removed)
	g.JSON(http.StatusOK, models.CleanupResponse{Removed: removed, Message: "duplicate votes removed"})
}

// @Security AdminToken
// deleteVotes godoc
// @Summary Delete all votes
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/votes [delete]
func (c *AdminController) deleteVotes(g *gin.Context) {
	if err := c.votesStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete votes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Info("ADMIN: deleted all votes")
	g.JSON(http.StatusOK, gin.H{"message": "All votes deleted"})
}

func (c *AdminController) generateShortCode() string {
	code, err := gonanoid.Generate(models.Alphabet, 5)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to generate code: %v", err)
		return "ERROR"
	}
	return code
}
