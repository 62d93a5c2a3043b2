package storage

import (
	"context"
	"testing"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/ballot"
	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore(t *testing.T) {
	logging.Log = logrus.New()
	ctx := context.Background()

	t.Run("Happy path - save and restore round trip", func(t *testing.T) {
		store := &SnapshotStore{Sessions: NewMemorySessionStorage(), Code: "AB12C"}

		snap := ballot.NewSnapshot()
		snap.Selections["president"] = "cand-1"
		snap.Locks["president"] = true
		require.NoError(t, store.Save(ctx, snap))

		got, err := store.Restore(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "cand-1", got.Selections["president"])
		assert.True(t, got.Locks["president"])
	})

	t.Run("Happy path - restore without a record is absent", func(t *testing.T) {
		store := &SnapshotStore{Sessions: NewMemorySessionStorage(), Code: "AB12C"}

		got, err := store.Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Happy path - saving again keeps the submitted flag", func(t *testing.T) {
		store := &SnapshotStore{Sessions: NewMemorySessionStorage(), Code: "AB12C"}

		require.NoError(t, store.Save(ctx, ballot.NewSnapshot()))
		require.NoError(t, store.MarkSubmitted(ctx))

		// A late snapshot write must not clear the flag.
		require.NoError(t, store.Save(ctx, ballot.NewSnapshot()))
		submitted, err := store.Submitted(ctx)
		require.NoError(t, err)
		assert.True(t, submitted)
	})

	t.Run("Unhappy path - corrupt snapshot restores as absent", func(t *testing.T) {
		sessions := NewMemorySessionStorage()
		require.NoError(t, sessions.Put(ctx, &SessionRecord{Code: "AB12C", Snapshot: []byte("not json")}))

		store := &SnapshotStore{Sessions: sessions, Code: "AB12C"}
		got, err := store.Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Happy path - codes do not share snapshots", func(t *testing.T) {
		sessions := NewMemorySessionStorage()
		first := &SnapshotStore{Sessions: sessions, Code: "AB12C"}
		second := &SnapshotStore{Sessions: sessions, Code: "XY98Z"}

		snap := ballot.NewSnapshot()
		snap.Selections["president"] = "cand-1"
		require.NoError(t, first.Save(ctx, snap))

		got, err := second.Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
