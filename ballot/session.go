package ballot

import (
	"context"
	"sync"
	"time"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
)

// Submitter is the external vote-submission collaborator. The session calls
// it at most once per accepted selection, on its own goroutine, and never
// waits for the result before advancing.
type Submitter interface {
	SubmitVote(ctx context.Context, positionID, candidateID string) error
}

// SubmitterFunc adapts a plain function to the Submitter interface.
type SubmitterFunc func(ctx context.Context, positionID, candidateID string) error

func (f SubmitterFunc) SubmitVote(ctx context.Context, positionID, candidateID string) error {
	return f(ctx, positionID, candidateID)
}

type Config struct {
	Positions []Position
	Submitter Submitter
	// Store is optional; without it the session is memory-only.
	Store  Store
	Delays Delays
	// OnError reports a failed submission after its rollback is applied.
	// OnComplete receives the final selection map, exactly once. Both run
	// on the session goroutine and must not call back into the session
	// synchronously.
	OnError    func(positionID string, err error)
	OnComplete func(selections map[string]string)
}

type timerKind int

const (
	timerAdvance timerKind = iota
	timerExit
	timerReview
	timerComplete
)

type event interface{}

type selectEvent struct {
	candidateID string
	reply       chan error
}

type timerEvent struct {
	seq  uint64
	kind timerKind
}

type submitFailedEvent struct {
	positionID string
	err        error
}

// Session drives one voter through the ballot: strictly sequential position
// advancement, optimistic per-position locking, fire-and-forget submission
// with rollback when the collaborator rejects a vote. All inputs (user
// selections, pacing timers, submission failures) are funneled through a
// single event loop, so transitions are totally ordered.
type Session struct {
	positions  []Position
	candidates map[string]map[string]struct{}
	submitter  Submitter
	store      Store
	delays     Delays
	onError    func(positionID string, err error)
	onComplete func(selections map[string]string)

	events    chan event
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	state    State
	index    int
	snap     *Snapshot
	timerSeq uint64
}

// NewSession builds a session over the given positions, restoring any saved
// snapshot. It resumes at the first position without a selection, or goes
// straight to reviewing when every position already has one. A snapshot that
// cannot be restored is treated as absent.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if len(cfg.Positions) == 0 {
		return nil, ErrNoPositions
	}

	delays := cfg.Delays
	if delays == (Delays{}) {
		delays = DefaultDelays()
	}

	s := &Session{
		positions:  cfg.Positions,
		candidates: make(map[string]map[string]struct{}, len(cfg.Positions)),
		submitter:  cfg.Submitter,
		store:      cfg.Store,
		delays:     delays,
		onError:    cfg.OnError,
		onComplete: cfg.OnComplete,
		events:     make(chan event, 32),
		done:       make(chan struct{}),
		snap:       NewSnapshot(),
	}
	for _, p := range cfg.Positions {
		ids := make(map[string]struct{}, len(p.Candidates))
		for _, c := range p.Candidates {
			ids[c.ID] = struct{}{}
		}
		s.candidates[p.ID] = ids
	}

	if cfg.Store != nil {
		snap, err := cfg.Store.Restore(ctx)
		if err != nil {
			logging.Log.Warnf("BALLOT: could not restore snapshot, starting fresh: %v", err)
			snap = nil
		}
		if snap != nil {
			s.snap = snap.Clone()
		}
	}

	// The lock map is derived from the selections so the lock<=>selection
	// invariant holds even if the persisted copy drifted.
	s.snap.Locks = make(map[string]bool, len(s.snap.Selections))
	for _, p := range s.positions {
		if _, ok := s.snap.Selections[p.ID]; ok {
			s.snap.Locks[p.ID] = true
		}
	}

	s.state = StateVoting
	s.index = len(s.positions) - 1
	resumed := false
	for i, p := range s.positions {
		if _, ok := s.snap.Selections[p.ID]; !ok {
			s.index = i
			resumed = true
			break
		}
	}
	if !resumed {
		s.state = StateReviewing
	}

	return s, nil
}

// Start launches the event loop. A session restored with every position
// already selected proceeds to submission after the review delay.
func (s *Session) Start() {
	go s.run()

	s.mu.Lock()
	if s.state == StateReviewing {
		s.schedule(timerReview, s.delays.Review)
	}
	s.mu.Unlock()
}

// Close stops the event loop and discards pending timers. In-flight
// submissions are not cancelled; their results are dropped.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Select casts the vote for the current position. It returns once the
// selection and lock are applied; the submission itself happens in the
// background. A locked position or a candidate from another position leaves
// the session untouched.
func (s *Session) Select(candidateID string) error {
	ev := selectEvent{candidateID: candidateID, reply: make(chan error, 1)}
	select {
	case <-s.done:
		return ErrSessionClosed
	case s.events <- ev:
	}
	select {
	case <-s.done:
		return ErrSessionClosed
	case err := <-ev.reply:
		return err
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) PositionIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// CurrentPosition returns the position on screen, or nil outside the
// voting/exiting phases.
func (s *Session) CurrentPosition() *Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateVoting && s.state != StateExiting {
		return nil
	}
	p := s.positions[s.index]
	return &p
}

func (s *Session) Positions() []Position {
	return s.positions
}

// Snapshot returns a copy of the current selection and lock maps.
func (s *Session) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateCompleted
}

func (s *Session) run() {
	for {
		select {
		case <-s.done:
			return
		case ev := <-s.events:
			switch e := ev.(type) {
			case selectEvent:
				e.reply <- s.handleSelect(e.candidateID)
			case timerEvent:
				s.handleTimer(e)
			case submitFailedEvent:
				s.handleRollback(e)
			}
		}
	}
}

// post delivers an event from a timer or submission goroutine without
// blocking a closed session.
func (s *Session) post(ev event) {
	select {
	case <-s.done:
	case s.events <- ev:
	}
}

// schedule arms the next pacing timer. Bumping timerSeq invalidates whatever
// timer was pending before. Callers hold s.mu.
func (s *Session) schedule(kind timerKind, d time.Duration) {
	s.timerSeq++
	seq := s.timerSeq
	time.AfterFunc(d, func() {
		s.post(timerEvent{seq: seq, kind: kind})
	})
}

func (s *Session) handleSelect(candidateID string) error {
	s.mu.Lock()
	if s.state != StateVoting {
		s.mu.Unlock()
		return ErrNotAccepting
	}
	pos := s.positions[s.index]
	if s.snap.Locks[pos.ID] {
		s.mu.Unlock()
		return ErrPositionLocked
	}
	if _, ok := s.candidates[pos.ID][candidateID]; !ok {
		s.mu.Unlock()
		return ErrUnknownCandidate
	}

	s.snap.Selections[pos.ID] = candidateID
	s.snap.Locks[pos.ID] = true
	s.schedule(timerAdvance, s.delays.Advance)
	s.mu.Unlock()

	s.persist()
	go s.submit(pos.ID, candidateID)
	return nil
}

func (s *Session) handleTimer(e timerEvent) {
	s.mu.Lock()
	if e.seq != s.timerSeq {
		// Superseded, or cancelled by a rollback.
		s.mu.Unlock()
		return
	}

	switch e.kind {
	case timerAdvance:
		if s.state != StateVoting {
			s.mu.Unlock()
			return
		}
		if s.index+1 < len(s.positions) {
			s.state = StateExiting
			s.schedule(timerExit, s.delays.Exit)
		} else {
			s.state = StateReviewing
			s.schedule(timerReview, s.delays.Review)
		}
		s.mu.Unlock()

	case timerExit:
		s.index++
		s.state = StateVoting
		s.mu.Unlock()

	case timerReview:
		s.state = StateSubmitting
		s.schedule(timerComplete, s.delays.Complete)
		s.mu.Unlock()

	case timerComplete:
		s.state = StateCompleted
		selections := make(map[string]string, len(s.snap.Selections))
		for k, v := range s.snap.Selections {
			selections[k] = v
		}
		s.mu.Unlock()

		if s.store != nil {
			if err := s.store.MarkSubmitted(context.Background()); err != nil {
				logging.Log.Errorf("BALLOT: failed to mark session submitted: %v", err)
			}
		}
		if s.onComplete != nil {
			s.onComplete(selections)
		}

	default:
		s.mu.Unlock()
	}
}

// handleRollback clears the failed position's selection and lock no matter
// how far the session has advanced since. When the failure lands while that
// position is still on screen, the pending auto-advance is cancelled so the
// voter can pick again.
func (s *Session) handleRollback(e submitFailedEvent) {
	s.mu.Lock()
	delete(s.snap.Selections, e.positionID)
	delete(s.snap.Locks, e.positionID)
	if s.state == StateVoting && s.positions[s.index].ID == e.positionID {
		s.timerSeq++
	}
	s.mu.Unlock()

	s.persist()
	logging.Log.Errorf("BALLOT: submission failed for position %s, rolled back: %v", e.positionID, e.err)
	if s.onError != nil {
		s.onError(e.positionID, e.err)
	}
}

func (s *Session) submit(positionID, candidateID string) {
	if s.submitter == nil {
		return
	}
	if err := s.submitter.SubmitVote(context.Background(), positionID, candidateID); err != nil {
		s.post(submitFailedEvent{positionID: positionID, err: err})
	}
}

func (s *Session) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(context.Background(), s.Snapshot()); err != nil {
		logging.Log.Errorf("BALLOT: failed to save snapshot: %v", err)
	}
}
