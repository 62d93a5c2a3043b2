package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	testutils "github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/controllers/testing"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateVotingCode(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("Happy path - verify valid code", func(t *testing.T) {
		env.seedCode(t, "AB12C", "s4")

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/verify/AB12C", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body models.CodeValidationResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.True(t, body.Valid)
		assert.Equal(t, "s4", body.Class)
		assert.Equal(t, "AB12C", body.Code)
		assert.False(t, body.Used)
	})

	t.Run("Unhappy path - verify non existing code", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/verify/NOTEX", nil, nil)
		require.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("Happy path - used code is reported used", func(t *testing.T) {
		env.seedCode(t, "US3DC", "s5")
		require.NoError(t, env.codes.MarkUsed(context.Background(), "US3DC"))

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/verify/US3DC", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body models.CodeValidationResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.True(t, body.Valid)
		assert.True(t, body.Used)
	})
}

func TestGetBallot(t *testing.T) {
	t.Run("Happy path - positions come back ordered with candidates", func(t *testing.T) {
		env := setupTestEnv(t)
		env.seedBallot(t, 3)

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/ballot", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body models.BallotResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		require.Len(t, body.Positions, 3)
		assert.Equal(t, "p1", body.Positions[0].ID)
		assert.Equal(t, "p3", body.Positions[2].ID)
		assert.Len(t, body.Positions[0].Candidates, 2)
	})

	t.Run("Happy path - positions without candidates are omitted", func(t *testing.T) {
		env := setupTestEnv(t)
		env.seedBallot(t, 2)
		require.NoError(t, env.positions.Create(context.Background(), &storage.Position{
			ID:    "empty",
			Title: "Nobody Is Standing",
			Order: 0,
		}))

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/ballot", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body models.BallotResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		require.Len(t, body.Positions, 2)
		for _, p := range body.Positions {
			assert.NotEqual(t, "empty", p.ID)
		}
	})

	t.Run("Happy path - empty ballot is an empty list", func(t *testing.T) {
		env := setupTestEnv(t)

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/ballot", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body models.BallotResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Empty(t, body.Positions)
	})
}

func TestGetVotesByCode(t *testing.T) {
	env := setupTestEnv(t)
	env.seedBallot(t, 2)
	ctx := context.Background()

	require.NoError(t, env.votes.Create(ctx, &storage.Vote{
		Code:        "AB12C",
		SortKey:     storage.VoteSortKey("p1"),
		PositionID:  "p1",
		CandidateID: "p1-c1",
		Valid:       true,
		Timestamp:   time.Now().UTC(),
	}))
	require.NoError(t, env.votes.Create(ctx, &storage.Vote{
		Code:        "AB12C",
		SortKey:     storage.VoteSortKey("p2"),
		PositionID:  "p2",
		CandidateID: "p2-c2",
		Valid:       false,
		Timestamp:   time.Now().UTC(),
	}))

	t.Run("Happy path - votes carry position and candidate names", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/vote/AB12C", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body models.GetVoteResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Equal(t, "AB12C", body.Code)
		require.Len(t, body.Votes, 2)
		assert.Equal(t, "Position 1", body.Votes[0].PositionTitle)
		assert.Equal(t, "Candidate 1-1", body.Votes[0].CandidateName)
		assert.True(t, body.Votes[0].Valid)
		assert.False(t, body.Votes[1].Valid)
	})

	t.Run("Unhappy path - code without votes", func(t *testing.T) {
		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/vote/ZZZZZ", nil, nil)
		require.Equal(t, http.StatusNotFound, res.Code)
	})
}
