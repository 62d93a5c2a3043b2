package controllers

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const (
	testAdminToken = "test-admin-token"
	waitFor        = 2 * time.Second
	tick           = 5 * time.Millisecond
)

func adminHeaders() map[string]string {
	return map[string]string{"x-admin-token": testAdminToken}
}

// testEnv wires every controller against the in-memory storages so the suite
// runs without a DynamoDB endpoint.
type testEnv struct {
	codes      *storage.MemoryVotingCodeStorage
	votes      *storage.MemoryVoteStorage
	positions  *storage.MemoryPositionStorage
	candidates *storage.MemoryCandidateStorage
	sessions   *storage.MemorySessionStorage
	registry   *ballot.Registry
	router     *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logging.Log = logrus.New()
	t.Setenv("ADMIN_TOKEN", testAdminToken)

	env := &testEnv{
		codes:      storage.NewMemoryVotingCodeStorage(),
		votes:      storage.NewMemoryVoteStorage(),
		positions:  storage.NewMemoryPositionStorage(),
		candidates: storage.NewMemoryCandidateStorage(),
		sessions:   storage.NewMemorySessionStorage(),
		registry:   ballot.NewRegistry(),
	}

	delays := ballot.Delays{
		Advance:  30 * time.Millisecond,
		Exit:     10 * time.Millisecond,
		Review:   20 * time.Millisecond,
		Complete: 20 * time.Millisecond,
	}

	gin.SetMode(gin.TestMode)
	env.router = gin.New()

	NewVotingController(env.codes, env.votes, env.positions, env.candidates).RegisterRoutes(env.router)
	NewSessionController(env.codes, env.votes, env.positions, env.candidates, env.sessions, env.registry, delays).RegisterRoutes(env.router)
	NewAdminController(env.codes, env.votes, env.positions, env.candidates).RegisterRoutes(env.router)
	NewPositionMetaController(env.positions).RegisterRoutes(env.router)
	NewCandidateMetaController(env.candidates).RegisterRoutes(env.router)

	return env
}

// seedBallot stores n positions with two candidates each, ordered p1..pn.
// Candidate IDs follow the pN-cM convention.
func (env *testEnv) seedBallot(t *testing.T, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("p%d", i)
		require.NoError(t, env.positions.Create(ctx, &storage.Position{
			ID:    id,
			Title: fmt.Sprintf("Position %d", i),
			Order: i,
		}))
		for j := 1; j <= 2; j++ {
			require.NoError(t, env.candidates.Create(ctx, &storage.Candidate{
				ID:         fmt.Sprintf("%s-c%d", id, j),
				PositionID: id,
				Name:       fmt.Sprintf("Candidate %d-%d", i, j),
				Class:      "s4",
				Stream:     "West",
			}))
		}
	}
}

func (env *testEnv) seedCode(t *testing.T, code, class string) {
	t.Helper()
	require.NoError(t, env.codes.Put(context.Background(), &storage.VotingCode{
		Code:      code,
		Class:     class,
		CreatedAt: time.Now().UTC(),
	}))
}
