package ballot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

func testDelays() Delays {
	return Delays{
		Advance:  40 * time.Millisecond,
		Exit:     10 * time.Millisecond,
		Review:   20 * time.Millisecond,
		Complete: 20 * time.Millisecond,
	}
}

func testPositions(n int) []Position {
	positions := make([]Position, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("p%d", i)
		positions = append(positions, Position{
			ID:    id,
			Title: fmt.Sprintf("Position %d", i),
			Candidates: []Candidate{
				{ID: id + "-c1", Name: "Candidate One"},
				{ID: id + "-c2", Name: "Candidate Two"},
			},
		})
	}
	return positions
}

type recordingSubmitter struct {
	mu    sync.Mutex
	calls []string
	errs  map[string]error
}

func (r *recordingSubmitter) SubmitVote(_ context.Context, positionID, candidateID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, positionID+"="+candidateID)
	if err := r.errs[positionID]; err != nil {
		delete(r.errs, positionID)
		return err
	}
	return nil
}

func (r *recordingSubmitter) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type stubStore struct {
	mu         sync.Mutex
	snap       *Snapshot
	submitted  bool
	restoreErr error
	saves      int
}

func (s *stubStore) Save(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap.Clone()
	s.saves++
	return nil
}

func (s *stubStore) Restore(_ context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.restoreErr != nil {
		return nil, s.restoreErr
	}
	if s.snap == nil {
		return nil, nil
	}
	return s.snap.Clone(), nil
}

func (s *stubStore) MarkSubmitted(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = true
	return nil
}

func (s *stubStore) Submitted(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted, nil
}

func startSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	logging.Log = logrus.New()
	s, err := NewSession(context.Background(), cfg)
	require.NoError(t, err)
	s.Start()
	t.Cleanup(s.Close)
	return s
}

func TestSessionSelect(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - selection locks the position before submission resolves", func(t *testing.T) {
		submitter := &recordingSubmitter{}
		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: submitter,
			Delays:    testDelays(),
		})

		require.NoError(t, s.Select("p1-c1"))

		// Lock and selection are visible immediately, before any advance.
		snap := s.Snapshot()
		assert.Equal(t, "p1-c1", snap.Selections["p1"])
		assert.True(t, snap.Locks["p1"])
	})

	t.Run("Unhappy path - locked position rejects a second selection", func(t *testing.T) {
		submitter := &recordingSubmitter{}
		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: submitter,
			Delays:    testDelays(),
		})

		require.NoError(t, s.Select("p1-c1"))
		err := s.Select("p1-c2")
		require.ErrorIs(t, err, ErrPositionLocked)

		// The first selection is untouched and no second submission fires.
		snap := s.Snapshot()
		assert.Equal(t, "p1-c1", snap.Selections["p1"])
		assert.Equal(t, 1, submitter.callCount())
	})

	t.Run("Unhappy path - candidate from another position is rejected", func(t *testing.T) {
		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: &recordingSubmitter{},
			Delays:    testDelays(),
		})

		err := s.Select("p2-c1")
		require.ErrorIs(t, err, ErrUnknownCandidate)
		assert.Empty(t, s.Snapshot().Selections)
	})

	t.Run("Unhappy path - closed session rejects selections", func(t *testing.T) {
		s := startSession(t, Config{
			Positions: testPositions(1),
			Submitter: &recordingSubmitter{},
			Delays:    testDelays(),
		})

		s.Close()
		err := s.Select("p1-c1")
		require.ErrorIs(t, err, ErrSessionClosed)
	})

	t.Run("Unhappy path - empty ballot is rejected", func(t *testing.T) {
		_, err := NewSession(context.Background(), Config{Submitter: &recordingSubmitter{}})
		require.ErrorIs(t, err, ErrNoPositions)
	})
}

func TestSessionAdvance(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - full ballot walks every position and completes once", func(t *testing.T) {
		var completions atomic.Int32
		var final map[string]string
		var finalMu sync.Mutex

		submitter := &recordingSubmitter{}
		store := &stubStore{}
		s := startSession(t, Config{
			Positions: testPositions(3),
			Submitter: submitter,
			Store:     store,
			Delays:    testDelays(),
			OnComplete: func(selections map[string]string) {
				completions.Add(1)
				finalMu.Lock()
				final = selections
				finalMu.Unlock()
			},
		})

		for i := 1; i <= 3; i++ {
			index := i - 1
			require.Eventually(t, func() bool {
				return s.State() == StateVoting && s.PositionIndex() == index
			}, waitFor, tick, "never reached position %d", index)

			pos := s.CurrentPosition()
			require.NotNil(t, pos)
			require.Equal(t, fmt.Sprintf("p%d", i), pos.ID)
			require.NoError(t, s.Select(pos.ID+"-c1"))
		}

		require.Eventually(t, s.Completed, waitFor, tick)

		// Completion fired exactly once, with every position selected.
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, int32(1), completions.Load())
		finalMu.Lock()
		assert.Equal(t, map[string]string{"p1": "p1-c1", "p2": "p2-c1", "p3": "p3-c1"}, final)
		finalMu.Unlock()

		assert.Equal(t, 3, submitter.callCount())
		submitted, err := store.Submitted(context.Background())
		require.NoError(t, err)
		assert.True(t, submitted)
	})

	t.Run("Happy path - advancement is strictly one position at a time", func(t *testing.T) {
		s := startSession(t, Config{
			Positions: testPositions(3),
			Submitter: &recordingSubmitter{},
			Delays:    testDelays(),
		})

		require.NoError(t, s.Select("p1-c1"))
		require.Eventually(t, func() bool {
			return s.State() == StateVoting && s.PositionIndex() == 1
		}, waitFor, tick)

		// Position 3 is not reachable while position 2 is unselected.
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, 1, s.PositionIndex())
		assert.Equal(t, StateVoting, s.State())
	})

	t.Run("Happy path - last position goes to review instead of exiting", func(t *testing.T) {
		s := startSession(t, Config{
			Positions: testPositions(1),
			Submitter: &recordingSubmitter{},
			Delays:    testDelays(),
		})

		require.NoError(t, s.Select("p1-c1"))
		require.Eventually(t, func() bool {
			st := s.State()
			return st == StateReviewing || st == StateSubmitting || st == StateCompleted
		}, waitFor, tick)
		assert.Nil(t, s.CurrentPosition())
	})
}

func TestSessionRollback(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - failure before advance keeps the voter on the position", func(t *testing.T) {
		failures := make(chan string, 1)
		submitter := &recordingSubmitter{errs: map[string]error{"p1": errors.New("rejected")}}
		delays := testDelays()
		delays.Advance = 300 * time.Millisecond

		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: submitter,
			Delays:    delays,
			OnError: func(positionID string, err error) {
				failures <- positionID
			},
		})

		require.NoError(t, s.Select("p1-c1"))

		select {
		case pos := <-failures:
			assert.Equal(t, "p1", pos)
		case <-time.After(waitFor):
			t.Fatal("rollback never reported")
		}

		// The rollback cancelled the pending advance and reopened the position.
		assert.Equal(t, StateVoting, s.State())
		assert.Equal(t, 0, s.PositionIndex())
		snap := s.Snapshot()
		assert.Empty(t, snap.Selections)
		assert.Empty(t, snap.Locks)

		// A different candidate can be picked right away.
		require.NoError(t, s.Select("p1-c2"))
		require.Eventually(t, func() bool {
			return s.PositionIndex() == 1 && s.State() == StateVoting
		}, waitFor, tick)
		assert.Equal(t, "p1-c2", s.Snapshot().Selections["p1"])
	})

	t.Run("Happy path - late failure clears the selection without navigating back", func(t *testing.T) {
		release := make(chan struct{})
		failures := make(chan string, 1)
		first := true
		var firstMu sync.Mutex

		submitter := SubmitterFunc(func(_ context.Context, positionID, candidateID string) error {
			firstMu.Lock()
			mine := first
			first = false
			firstMu.Unlock()
			if mine {
				<-release
				return errors.New("rejected after advance")
			}
			return nil
		})

		s := startSession(t, Config{
			Positions: testPositions(3),
			Submitter: submitter,
			Delays:    testDelays(),
			OnError: func(positionID string, err error) {
				failures <- positionID
			},
		})

		require.NoError(t, s.Select("p1-c1"))
		require.Eventually(t, func() bool {
			return s.State() == StateVoting && s.PositionIndex() == 1
		}, waitFor, tick)

		// The submission fails only after the session has moved on.
		close(release)
		select {
		case pos := <-failures:
			assert.Equal(t, "p1", pos)
		case <-time.After(waitFor):
			t.Fatal("rollback never reported")
		}

		snap := s.Snapshot()
		assert.NotContains(t, snap.Selections, "p1")
		assert.NotContains(t, snap.Locks, "p1")
		assert.Equal(t, 1, s.PositionIndex())
		assert.Equal(t, StateVoting, s.State())
	})
}

func TestSessionRestore(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - resumes at the first unselected position", func(t *testing.T) {
		store := &stubStore{snap: &Snapshot{
			Selections: map[string]string{"p1": "p1-c1"},
			Locks:      map[string]bool{"p1": true},
		}}

		s := startSession(t, Config{
			Positions: testPositions(3),
			Submitter: &recordingSubmitter{},
			Store:     store,
			Delays:    testDelays(),
		})

		assert.Equal(t, StateVoting, s.State())
		assert.Equal(t, 1, s.PositionIndex())

		// The restored position stays locked.
		err := s.Select("p1-c2")
		require.ErrorIs(t, err, ErrUnknownCandidate)
		assert.Equal(t, "p1-c1", s.Snapshot().Selections["p1"])
	})

	t.Run("Happy path - resumes at the last position when only it is unselected", func(t *testing.T) {
		store := &stubStore{snap: &Snapshot{
			Selections: map[string]string{"p1": "p1-c1", "p2": "p2-c2"},
			Locks:      map[string]bool{"p1": true, "p2": true},
		}}

		s := startSession(t, Config{
			Positions: testPositions(3),
			Submitter: &recordingSubmitter{},
			Store:     store,
			Delays:    testDelays(),
		})

		assert.Equal(t, StateVoting, s.State())
		assert.Equal(t, 2, s.PositionIndex())
	})

	t.Run("Happy path - fully selected snapshot resumes at review and completes", func(t *testing.T) {
		store := &stubStore{snap: &Snapshot{
			Selections: map[string]string{"p1": "p1-c1", "p2": "p2-c2"},
			Locks:      map[string]bool{"p1": true, "p2": true},
		}}
		var completions atomic.Int32

		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: &recordingSubmitter{},
			Store:     store,
			Delays:    testDelays(),
			OnComplete: func(map[string]string) {
				completions.Add(1)
			},
		})

		assert.Equal(t, StateReviewing, s.State())
		require.Eventually(t, s.Completed, waitFor, tick)
		assert.Equal(t, int32(1), completions.Load())
	})

	t.Run("Happy path - lock map is rebuilt from the selections", func(t *testing.T) {
		// A drifted snapshot: selection present, lock missing, plus a lock
		// for a position that no longer exists.
		store := &stubStore{snap: &Snapshot{
			Selections: map[string]string{"p1": "p1-c1"},
			Locks:      map[string]bool{"gone": true},
		}}

		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: &recordingSubmitter{},
			Store:     store,
			Delays:    testDelays(),
		})

		snap := s.Snapshot()
		assert.True(t, snap.Locks["p1"])
		assert.NotContains(t, snap.Locks, "gone")
	})

	t.Run("Unhappy path - restore error starts a fresh session", func(t *testing.T) {
		store := &stubStore{restoreErr: errors.New("table unavailable")}

		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: &recordingSubmitter{},
			Store:     store,
			Delays:    testDelays(),
		})

		assert.Equal(t, StateVoting, s.State())
		assert.Equal(t, 0, s.PositionIndex())
		assert.Empty(t, s.Snapshot().Selections)
	})
}

func TestSessionPersistence(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - every accepted selection is saved", func(t *testing.T) {
		store := &stubStore{}
		s := startSession(t, Config{
			Positions: testPositions(2),
			Submitter: &recordingSubmitter{},
			Store:     store,
			Delays:    testDelays(),
		})

		require.NoError(t, s.Select("p1-c1"))
		require.Eventually(t, func() bool {
			snap, err := store.Restore(context.Background())
			return err == nil && snap != nil && snap.Selections["p1"] == "p1-c1"
		}, waitFor, tick)
	})
}
