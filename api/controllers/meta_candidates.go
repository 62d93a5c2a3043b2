package controllers

import (
	"errors"
	"net/http"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/transport"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/gin-gonic/gin"
)

type CandidateMetaController struct {
	storage storage.CandidateStorage
}

func NewCandidateMetaController(s storage.CandidateStorage) *CandidateMetaController {
	return &CandidateMetaController{storage: s}
}

func (c *CandidateMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/candidates")

	group.GET("", c.getAll)
	group.GET("/:id", transport.AdminAuthMiddleware(), c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all candidates
// @Tags Meta/Candidates
// @Produce json
// @Success 200 {array} models.CandidateResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/candidates [get]
func (c *CandidateMetaController) getAll(g *gin.Context) {
	candidates, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all candidates: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]models.CandidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		responses = append(responses, models.TransformCandidateFromStorage(cand))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a candidate by ID
// @Tags Meta/Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.CandidateResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/candidates/{id} [get]
func (c *CandidateMetaController) get(g *gin.Context) {
	id := g.Param("id")
	candidate, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("META: failed to get candidate: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if candidate == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		return
	}
	g.JSON(http.StatusOK, models.TransformCandidateFromStorage(candidate))
}

// @Summary Create a candidate
// @Tags Meta/Candidates
// @Accept json
// @Produce json
// @Param request body models.CandidateCreateRequest true "Candidate"
// @Success 200 {object} models.CandidateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/candidates [post]
func (c *CandidateMetaController) create(g *gin.Context) {
	var req models.CandidateCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ID == "" || req.PositionID == "" || req.Name == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, missing id, positionId or name"})
		return
	}

	candidate := &storage.Candidate{
		ID:         req.ID,
		PositionID: req.PositionID,
		Name:       req.Name,
		Email:      req.Email,
		Photo:      req.Photo,
		Class:      req.Class,
		Stream:     req.Stream,
	}
	if err := c.storage.Create(g.Request.Context(), candidate); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, gin.H{"error": "candidate already exists"})
			return
		}
		logging.Log.Errorf("META: failed to create candidate: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("META: created candidate %s for position %s", candidate.ID, candidate.PositionID)
	g.JSON(http.StatusOK, models.TransformCandidateFromStorage(candidate))
}

// @Summary Update a candidate
// @Tags Meta/Candidates
// @Accept json
// @Produce json
// @Param id path string true "Candidate ID"
// @Param request body models.CandidateUpdateRequest true "Candidate"
// @Success 200 {object} models.CandidateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/candidates/{id} [put]
func (c *CandidateMetaController) update(g *gin.Context) {
	id := g.Param("id")

	existing, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("META: failed to get candidate for update: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		return
	}

	var req models.CandidateUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	candidate := &storage.Candidate{
		ID:         id,
		PositionID: req.PositionID,
		Name:       req.Name,
		Email:      req.Email,
		Photo:      req.Photo,
		Class:      req.Class,
		Stream:     req.Stream,
	}
	if err := c.storage.Update(g.Request.Context(), candidate); err != nil {
		logging.Log.Errorf("META: failed to update candidate: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("META: updated candidate %s", id)
	g.JSON(http.StatusOK, models.TransformCandidateFromStorage(candidate))
}

// @Summary Delete a candidate
// @Tags Meta/Candidates
// @Produce json
// @Param id path string true "Candidate ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/candidates/{id} [delete]
func (c *CandidateMetaController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("META: failed to delete candidate: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("META: deleted candidate %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}
