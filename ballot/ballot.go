package ballot

import (
	"errors"
	"time"
)

// Candidate is a person standing for one position.
type Candidate struct {
	ID     string
	Name   string
	Email  string
	Photo  string
	Class  string
	Stream string
}

// Position is an electable office with its fixed candidate list. The list is
// immutable for the lifetime of a session.
type Position struct {
	ID          string
	Title       string
	Description string
	Candidates  []Candidate
}

// State is the ballot session phase.
type State int

const (
	// StateVoting accepts a candidate selection for the current position.
	StateVoting State = iota
	// StateExiting sequences the exit animation before the next position.
	StateExiting
	// StateReviewing is entered once every position has a selection.
	StateReviewing
	// StateSubmitting is the short window before completion fires.
	StateSubmitting
	// StateCompleted is terminal; the completion callback has run.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateVoting:
		return "voting"
	case StateExiting:
		return "exiting"
	case StateReviewing:
		return "reviewing"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Delays paces the automatic transitions. The defaults mirror the voting UI
// animations; tests shrink them to keep the suite fast.
type Delays struct {
	Advance  time.Duration
	Exit     time.Duration
	Review   time.Duration
	Complete time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Advance:  1500 * time.Millisecond,
		Exit:     400 * time.Millisecond,
		Review:   800 * time.Millisecond,
		Complete: 2 * time.Second,
	}
}

var (
	ErrNoPositions      = errors.New("ballot has no positions with candidates")
	ErrSessionClosed    = errors.New("ballot session is closed")
	ErrNotAccepting     = errors.New("ballot session is not accepting selections")
	ErrPositionLocked   = errors.New("position is locked by an earlier selection")
	ErrUnknownCandidate = errors.New("candidate does not belong to the current position")
)
