package storage

import (
	"context"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
)

// SnapshotStore narrows SessionStorage to one voter's code so it satisfies
// ballot.Store. A corrupt persisted snapshot restores as absent.
type SnapshotStore struct {
	Sessions SessionStorage
	Code     string
}

func (s *SnapshotStore) Save(ctx context.Context, snap *ballot.Snapshot) error {
	blob, err := snap.Encode()
	if err != nil {
		return err
	}

	record := &SessionRecord{Code: s.Code, Snapshot: blob}
	// Keep the completion flag across overwrites.
	if existing, err := s.Sessions.Get(ctx, s.Code); err == nil && existing != nil {
		record.Submitted = existing.Submitted
	}
	return s.Sessions.Put(ctx, record)
}

func (s *SnapshotStore) Restore(ctx context.Context) (*ballot.Snapshot, error) {
	record, err := s.Sessions.Get(ctx, s.Code)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return ballot.DecodeSnapshot(record.Snapshot), nil
}

func (s *SnapshotStore) MarkSubmitted(ctx context.Context) error {
	return s.Sessions.MarkSubmitted(ctx, s.Code)
}

func (s *SnapshotStore) Submitted(ctx context.Context) (bool, error) {
	record, err := s.Sessions.Get(ctx, s.Code)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}
	return record.Submitted, nil
}
