package ballot

import (
	"context"
	"encoding/json"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
)

// Snapshot is the persisted pair of selection and lock maps, both keyed by
// position ID. It is everything needed to resume an interrupted session.
type Snapshot struct {
	Selections map[string]string `json:"selections"`
	Locks      map[string]bool   `json:"locks"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Selections: make(map[string]string),
		Locks:      make(map[string]bool),
	}
}

func (s *Snapshot) Clone() *Snapshot {
	c := NewSnapshot()
	for k, v := range s.Selections {
		c.Selections[k] = v
	}
	for k, v := range s.Locks {
		c.Locks[k] = v
	}
	return c
}

// Encode serializes the snapshot to its persisted blob form.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// DecodeSnapshot parses a persisted blob. A malformed blob is treated as no
// snapshot: it returns nil and logs, it never fails.
func DecodeSnapshot(data []byte) *Snapshot {
	if len(data) == 0 {
		return nil
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		logging.Log.Warnf("BALLOT: discarding malformed snapshot: %v", err)
		return nil
	}
	if s.Selections == nil {
		s.Selections = make(map[string]string)
	}
	if s.Locks == nil {
		s.Locks = make(map[string]bool)
	}
	return &s
}

// Store persists session snapshots for one voter. Restore must degrade to
// (nil, nil) on corrupt data; only transport-level failures are errors, and
// the session treats even those as an absent snapshot.
type Store interface {
	Save(ctx context.Context, snap *Snapshot) error
	Restore(ctx context.Context) (*Snapshot, error)
	// MarkSubmitted sets the durable completion flag consulted by the
	// page-leave guard to tell an abandoned ballot from a finished one.
	MarkSubmitted(ctx context.Context) error
	Submitted(ctx context.Context) (bool, error)
}
