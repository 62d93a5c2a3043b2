package ballot

import (
	"testing"

	"github.com/Rinnah-Menta/glorious-gateway-54305-90485-86962-10016/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Happy path - encode and decode preserve selections and locks", func(t *testing.T) {
		snap := NewSnapshot()
		snap.Selections["president"] = "cand-1"
		snap.Locks["president"] = true

		data, err := snap.Encode()
		require.NoError(t, err)

		got := DecodeSnapshot(data)
		require.NotNil(t, got)
		assert.Equal(t, snap.Selections, got.Selections)
		assert.Equal(t, snap.Locks, got.Locks)
	})

	t.Run("Happy path - decoded nil maps are initialized", func(t *testing.T) {
		got := DecodeSnapshot([]byte(`{}`))
		require.NotNil(t, got)
		assert.NotNil(t, got.Selections)
		assert.NotNil(t, got.Locks)
	})
}

func TestDecodeSnapshotMalformed(t *testing.T) {
	logging.Log = logrus.New()

	t.Run("Unhappy path - malformed blob is treated as absent", func(t *testing.T) {
		assert.Nil(t, DecodeSnapshot([]byte(`{"selections": [not json`)))
	})

	t.Run("Unhappy path - empty blob is treated as absent", func(t *testing.T) {
		assert.Nil(t, DecodeSnapshot(nil))
		assert.Nil(t, DecodeSnapshot([]byte{}))
	})
}

func TestSnapshotClone(t *testing.T) {
	t.Run("Happy path - clone does not alias the original maps", func(t *testing.T) {
		snap := NewSnapshot()
		snap.Selections["p1"] = "c1"
		snap.Locks["p1"] = true

		clone := snap.Clone()
		clone.Selections["p2"] = "c2"
		clone.Locks["p1"] = false

		assert.NotContains(t, snap.Selections, "p2")
		assert.True(t, snap.Locks["p1"])
	})
}
