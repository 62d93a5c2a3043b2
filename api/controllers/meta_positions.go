package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/transport"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/gin-gonic/gin"
)

type PositionMetaController struct {
	storage storage.PositionStorage
}

func NewPositionMetaController(s storage.PositionStorage) *PositionMetaController {
	return &PositionMetaController{storage: s}
}

func (c *PositionMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/positions")

	group.GET("", c.getAll)
	group.GET("/:id", transport.AdminAuthMiddleware(), c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all positions
// @Tags Meta/Positions
// @Produce json
// @Success 200 {array} models.PositionResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/positions [get]
func (c *PositionMetaController) getAll(g *gin.Context) {
	positions, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all positions: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	// Sort this so the ballot order is the same for everyone
	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].Order < positions[j].Order
	})

	responses := make([]models.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, models.TransformPositionFromStorage(p))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a position by ID
// @Tags Meta/Positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} models.PositionResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/positions/{id} [get]
func (c *PositionMetaController) get(g *gin.Context) {
	id := g.Param("id")
	position, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("META: failed to get position: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if position == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}
	g.JSON(http.StatusOK, models.TransformPositionFromStorage(position))
}

// @Summary Create a position
// @Tags Meta/Positions
// @Accept json
// @Produce json
// @Param request body models.PositionCreateRequest true "Position"
// @Success 200 {object} models.PositionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/positions [post]
func (c *PositionMetaController) create(g *gin.Context) {
	var req models.PositionCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ID == "" || req.Title == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, missing id or title"})
		return
	}

	position := &storage.Position{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := c.storage.Create(g.Request.Context(), position); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, gin.H{"error": "position already exists"})
			return
		}
		logging.Log.Errorf("META: failed to create position: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("META: created position %s", position.ID)
	g.JSON(http.StatusOK, models.TransformPositionFromStorage(position))
}

// @Summary Update a position
// @Tags Meta/Positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param request body models.PositionUpdateRequest true "Position"
// @Success 200 {object} models.PositionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/positions/{id} [put]
func (c *PositionMetaController) update(g *gin.Context) {
	id := g.Param("id")

	existing, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("META: failed to get position for update: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}

	var req models.PositionUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	position := &storage.Position{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := c.storage.Update(g.Request.Context(), position); err != nil {
		logging.Log.Errorf("META: failed to update position: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("META: updated position %s", id)
	g.JSON(http.StatusOK, models.TransformPositionFromStorage(position))
}

// @Summary Delete a position
// @Tags Meta/Positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/positions/{id} [delete]
func (c *PositionMetaController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("META: failed to delete position: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("META: deleted position %s", id)
	g.JSON(http.StatusOK, gin.H{"deleted": id})
}
