package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/gin-gonic/gin"
)

// SessionController owns the server-side ballot sessions. One session per
// voting code; the session machine drives advancement and submission, the
// controller only translates HTTP calls into machine inputs.
type SessionController struct {
	codesStorage      storage.VotingCodeStorage
	votesStorage      storage.VoteStorage
	positionsStorage  storage.PositionStorage
	candidatesStorage storage.CandidateStorage
	sessionsStorage   storage.SessionStorage
	registry          *ballot.Registry
	delays            ballot.Delays

	mu         sync.Mutex
	lastErrors map[string]string
}

func NewSessionController(codeStorage storage.VotingCodeStorage, voteStorage storage.VoteStorage, positionStorage storage.PositionStorage, candidateStorage storage.CandidateStorage, sessionStorage storage.SessionStorage, registry *ballot.Registry, delays ballot.Delays) *SessionController {
	return &SessionController{
		codesStorage:      codeStorage,
		votesStorage:      voteStorage,
		positionsStorage:  positionStorage,
		candidatesStorage: candidateStorage,
		sessionsStorage:   sessionStorage,
		registry:          registry,
		delays:            delays,
		lastErrors:        make(map[string]string),
	}
}

func (c *SessionController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/session")

	group.POST("/:code/start", c.startSession)
	group.POST("/:code/select", c.selectCandidate)
	group.GET("/:code", c.getSession)
}

// storageSubmitter records one position's vote for a code, carrying the
// device context captured when the session started. A vote without location
// data is stored flagged invalid.
type storageSubmitter struct {
	votes  storage.VoteStorage
	code   string
	device storage.DeviceContext
}

func (s *storageSubmitter) SubmitVote(ctx context.Context, positionID, candidateID string) error {
	vote := &storage.Vote{
		Code:        s.code,
		SortKey:     storage.VoteSortKey(positionID),
		PositionID:  positionID,
		CandidateID: candidateID,
		Valid:       s.device.Location != "",
		Device:      s.device,
		Timestamp:   time.Now().UTC(),
	}
	return s.votes.Create(ctx, vote)
}

// startSession godoc
// @Summary Start or resume a ballot session
// @Description Creates the server-side ballot session for a voting code, restoring any saved snapshot. The optional body carries the device context attached to every vote of this session.
// @Tags session
// @Accept json
// @Produce json
// @Param code path string true "Voting Code"
// @Param request body models.StartSessionRequest false "Device context"
// @Success 201 {object} models.SessionStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Code used or ballot already submitted"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{code}/start [post]
func (c *SessionController) startSession(g *gin.Context) {
	code := g.Param("code")

	votingCode, err := c.codesStorage.Get(g.Request.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrCodeNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "code not found"})
			return
		}
		logging.Log.Errorf("SESSION: failed to get code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify code"})
		return
	}
	if votingCode.Used {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "code already used"})
		return
	}

	var req models.StartSessionRequest
	if g.Request.ContentLength > 0 {
		if err := g.ShouldBindJSON(&req); err != nil {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
			return
		}
	}

	// Resuming an already-running session is a no-op.
	if existing := c.registry.Get(code); existing != nil {
		g.JSON(http.StatusOK, c.stateResponse(g.Request.Context(), code, existing))
		return
	}

	snapStore := &storage.SnapshotStore{Sessions: c.sessionsStorage, Code: code}
	if submitted, err := snapStore.Submitted(g.Request.Context()); err == nil && submitted {
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: "ballot already submitted"})
		return
	}

	positions, err := buildBallot(g.Request.Context(), c.positionsStorage, c.candidatesStorage)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to build ballot: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load ballot"})
		return
	}

	session, err := ballot.NewSession(g.Request.Context(), ballot.Config{
		Positions: positions,
		Submitter: &storageSubmitter{votes: c.votesStorage, code: code, device: req.Device},
		Store:     snapStore,
		Delays:    c.delays,
		OnError: func(positionID string, err error) {
			c.setLastError(code, err)
		},
		OnComplete: func(selections map[string]string) {
			c.completeSession(code, selections)
		},
	})
	if err != nil {
		if errors.Is(err, ballot.ErrNoPositions) {
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "no positions available for voting"})
			return
		}
		logging.Log.Errorf("SESSION: failed to create session for code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not start session"})
		return
	}

	session.Start()
	c.registry.Put(code, session)
	logging.Log.Infof("SESSION: started for code %s at position index %d", code, session.PositionIndex())

	g.JSON(http.StatusCreated, c.stateResponse(g.Request.Context(), code, session))
}

// selectCandidate godoc
// @Summary Cast the vote for the current position
// @Description Applies the selection optimistically and submits the vote in the background. A locked position or a candidate from another position is rejected without state change.
// @Tags session
// @Accept json
// @Produce json
// @Param code path string true "Voting Code"
// @Param request body models.SelectCandidateRequest true "Selection"
// @Success 200 {object} models.SessionStateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "No active session"
// @Failure 409 {object} models.ErrorResponse "Position locked or session not accepting selections"
// @Router /api/session/{code}/select [post]
func (c *SessionController) selectCandidate(g *gin.Context) {
	code := g.Param("code")

	session := c.registry.Get(code)
	if session == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no active session for this code"})
		return
	}

	var req models.SelectCandidateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.CandidateID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "candidateId is required"})
		return
	}

	if err := session.Select(req.CandidateID); err != nil {
		switch {
		case errors.Is(err, ballot.ErrUnknownCandidate):
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ballot.ErrPositionLocked), errors.Is(err, ballot.ErrNotAccepting), errors.Is(err, ballot.ErrSessionClosed):
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error()})
		default:
			logging.Log.Errorf("SESSION: selection failed for code %s: %v", code, err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not record selection"})
		}
		return
	}

	c.clearLastError(code)
	g.JSON(http.StatusOK, c.stateResponse(g.Request.Context(), code, session))
}

// getSession godoc
// @Summary Get the ballot session state
// @Description Returns the session phase, current position, selections and the completion flag consulted by the page-leave guard. Falls back to the persisted snapshot when no session is live.
// @Tags session
// @Produce json
// @Param code path string true "Voting Code"
// @Success 200 {object} models.SessionStateResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/session/{code} [get]
func (c *SessionController) getSession(g *gin.Context) {
	code := g.Param("code")

	if session := c.registry.Get(code); session != nil {
		g.JSON(http.StatusOK, c.stateResponse(g.Request.Context(), code, session))
		return
	}

	record, err := c.sessionsStorage.Get(g.Request.Context(), code)
	if err != nil {
		logging.Log.Errorf("SESSION: failed to load record for code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load session"})
		return
	}
	if record == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no session for this code"})
		return
	}

	snap := ballot.DecodeSnapshot(record.Snapshot)
	if snap == nil {
		snap = ballot.NewSnapshot()
	}
	state := "suspended"
	if record.Submitted {
		state = ballot.StateCompleted.String()
	}
	g.JSON(http.StatusOK, models.SessionStateResponse{
		Code:       code,
		State:      state,
		Selections: snap.Selections,
		Locks:      snap.Locks,
		Submitted:  record.Submitted,
		LastError:  c.lastError(code),
	})
}

func (c *SessionController) stateResponse(ctx context.Context, code string, session *ballot.Session) models.SessionStateResponse {
	snap := session.Snapshot()
	response := models.SessionStateResponse{
		Code:          code,
		State:         session.State().String(),
		PositionIndex: session.PositionIndex(),
		Selections:    snap.Selections,
		Locks:         snap.Locks,
		LastError:     c.lastError(code),
	}
	if pos := session.CurrentPosition(); pos != nil {
		response.PositionID = pos.ID
	}

	snapStore := &storage.SnapshotStore{Sessions: c.sessionsStorage, Code: code}
	if submitted, err := snapStore.Submitted(ctx); err == nil {
		response.Submitted = submitted
	}
	return response
}

// completeSession runs on the session goroutine once the completion callback
// fires: the code is spent so it cannot vote twice.
func (c *SessionController) completeSession(code string, selections map[string]string) {
	if err := c.codesStorage.MarkUsed(context.Background(), code); err != nil {
		logging.Log.Errorf("SESSION: failed to mark code %s used: %v", code, err)
	}
	logging.Log.Infof("SESSION: completed for code %s with %d selections", code, len(selections))
}

func (c *SessionController) setLastError(code string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErrors[code] = err.Error()
}

func (c *SessionController) clearLastError(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lastErrors, code)
}

func (c *SessionController) lastError(code string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErrors[code]
}
