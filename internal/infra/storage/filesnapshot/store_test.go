package filesnapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	_, found, err := s.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.False(t, found)

	payload := []byte(`[{"id":"booking-1"}]`)
	require.NoError(t, s.Save(ctx, "bookings", payload))

	got, found, err := s.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload, got)
}

func TestSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "bookings", []byte("first")))
	require.NoError(t, s.Save(ctx, "bookings", []byte("second")))

	got, found, err := s.Load(ctx, "bookings")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("second"), got)
}

func TestRejectsPathTraversalKeys(t *testing.T) {
	ctx := context.Background()
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b"} {
		assert.ErrorIs(t, s.Save(ctx, key, []byte("x")), ErrInvalidKey, "key %q", key)
		_, _, err := s.Load(ctx, key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
	}
}
