package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/controllers/testing"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/api/models"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionMeta(t *testing.T) {
	t.Run("Happy path - create and get a position", func(t *testing.T) {
		env := setupTestEnv(t)

		payload := models.PositionCreateRequest{ID: "president", Title: "President", Description: "Leads the council", Order: 1}
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/positions", payload, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		getRes := testutils.PerformRequest(env.router, http.MethodGet, "/api/meta/positions/president", nil, adminHeaders())
		require.Equal(t, http.StatusOK, getRes.Code)

		var body models.PositionResponse
		require.NoError(t, json.Unmarshal(getRes.Body.Bytes(), &body))
		assert.Equal(t, "President", body.Title)
		assert.Equal(t, 1, body.Order)
	})

	t.Run("Happy path - list is ordered for the ballot", func(t *testing.T) {
		env := setupTestEnv(t)
		ctx := context.Background()
		require.NoError(t, env.positions.Create(ctx, &storage.Position{ID: "second", Title: "Second", Order: 2}))
		require.NoError(t, env.positions.Create(ctx, &storage.Position{ID: "first", Title: "First", Order: 1}))

		res := testutils.PerformRequest(env.router, http.MethodGet, "/api/meta/positions", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var body []models.PositionResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "first", body[0].ID)
		assert.Equal(t, "second", body[1].ID)
	})

	t.Run("Happy path - update a position", func(t *testing.T) {
		env := setupTestEnv(t)
		require.NoError(t, env.positions.Create(context.Background(), &storage.Position{ID: "president", Title: "President", Order: 1}))

		payload := models.PositionUpdateRequest{Title: "Head Prefect", Order: 1}
		res := testutils.PerformRequest(env.router, http.MethodPut, "/api/meta/positions/president", payload, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		updated, err := env.positions.Get(context.Background(), "president")
		require.NoError(t, err)
		assert.Equal(t, "Head Prefect", updated.Title)
	})

	t.Run("Happy path - delete a position", func(t *testing.T) {
		env := setupTestEnv(t)
		require.NoError(t, env.positions.Create(context.Background(), &storage.Position{ID: "president", Title: "President"}))

		res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/meta/positions/president", nil, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		got, err := env.positions.Get(context.Background(), "president")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Unhappy path - duplicate position id", func(t *testing.T) {
		env := setupTestEnv(t)
		payload := models.PositionCreateRequest{ID: "president", Title: "President"}

		first := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/positions", payload, adminHeaders())
		require.Equal(t, http.StatusOK, first.Code)
		second := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/positions", payload, adminHeaders())
		require.Equal(t, http.StatusConflict, second.Code)
	})

	t.Run("Unhappy path - update missing position", func(t *testing.T) {
		env := setupTestEnv(t)

		payload := models.PositionUpdateRequest{Title: "Nobody"}
		res := testutils.PerformRequest(env.router, http.MethodPut, "/api/meta/positions/ghost", payload, adminHeaders())
		require.Equal(t, http.StatusNotFound, res.Code)
	})

	t.Run("Unhappy path - mutations require the admin token", func(t *testing.T) {
		env := setupTestEnv(t)

		payload := models.PositionCreateRequest{ID: "president", Title: "President"}
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/positions", payload, nil)
		require.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestCandidateMeta(t *testing.T) {
	t.Run("Happy path - create and list candidates", func(t *testing.T) {
		env := setupTestEnv(t)

		payload := models.CandidateCreateRequest{
			ID:         "cand-1",
			PositionID: "president",
			Name:       "Awino Grace",
			Email:      "awino@example.com",
			Class:      "s5",
			Stream:     "East",
		}
		res := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/candidates", payload, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		listRes := testutils.PerformRequest(env.router, http.MethodGet, "/api/meta/candidates", nil, nil)
		require.Equal(t, http.StatusOK, listRes.Code)

		var body []models.CandidateResponse
		require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "Awino Grace", body[0].Name)
		assert.Equal(t, "president", body[0].PositionID)
	})

	t.Run("Happy path - update a candidate", func(t *testing.T) {
		env := setupTestEnv(t)
		require.NoError(t, env.candidates.Create(context.Background(), &storage.Candidate{
			ID: "cand-1", PositionID: "president", Name: "Awino Grace", Class: "s5",
		}))

		payload := models.CandidateUpdateRequest{PositionID: "president", Name: "Awino G.", Class: "s6"}
		res := testutils.PerformRequest(env.router, http.MethodPut, "/api/meta/candidates/cand-1", payload, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		updated, err := env.candidates.Get(context.Background(), "cand-1")
		require.NoError(t, err)
		assert.Equal(t, "Awino G.", updated.Name)
		assert.Equal(t, "s6", updated.Class)
	})

	t.Run("Happy path - delete a candidate", func(t *testing.T) {
		env := setupTestEnv(t)
		require.NoError(t, env.candidates.Create(context.Background(), &storage.Candidate{ID: "cand-1", Name: "Awino Grace"}))

		res := testutils.PerformRequest(env.router, http.MethodDelete, "/api/meta/candidates/cand-1", nil, adminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		got, err := env.candidates.Get(context.Background(), "cand-1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Unhappy path - duplicate candidate id", func(t *testing.T) {
		env := setupTestEnv(t)
		payload := models.CandidateCreateRequest{ID: "cand-1", PositionID: "president", Name: "Awino Grace"}

		first := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/candidates", payload, adminHeaders())
		require.Equal(t, http.StatusOK, first.Code)
		second := testutils.PerformRequest(env.router, http.MethodPost, "/api/meta/candidates", payload, adminHeaders())
		require.Equal(t, http.StatusConflict, second.Code)
	})
}
