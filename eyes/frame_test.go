package eyes

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{50, 20 * time.Millisecond},
		{60, 16 * time.Millisecond},
		{1, time.Second},
		{30, 33 * time.Millisecond},
		{2000, 0},
	}

	for _, tt := range tests {
		got, err := frameInterval(tt.fps)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "fps %d", tt.fps)
	}
}

func TestSetFrameRate_RejectsNonPositive(t *testing.T) {
	e, _, _ := newTestEngine(t)
	require.NoError(t, e.SetFrameRate(60))

	for _, fps := range []int{0, -1} {
		err := e.SetFrameRate(fps)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidFrameRate))
	}
	assert.Equal(t, 16*time.Millisecond, e.FrameInterval(), "failed update keeps the old interval")
}

func TestUpdate_RespectsFrameInterval(t *testing.T) {
	e, rec, clock := newTestEngine(t)

	drawn, err := e.Update()
	require.NoError(t, err)
	assert.True(t, drawn, "first poll draws")

	drawn, _ = e.Update()
	assert.False(t, drawn)

	clock.Advance(19 * time.Millisecond)
	drawn, _ = e.Update()
	assert.False(t, drawn)

	clock.Advance(time.Millisecond)
	drawn, _ = e.Update()
	assert.True(t, drawn)

	// A slow poll draws a single frame, no catch-up.
	clock.Advance(75 * time.Millisecond)
	drawn, _ = e.Update()
	assert.True(t, drawn)
	drawn, _ = e.Update()
	assert.False(t, drawn)

	assert.Equal(t, 3, rec.Frames)
}

func TestUpdate_PresentError(t *testing.T) {
	e, rec, _ := newTestEngine(t)
	rec.Err = errors.New("i2c nack")

	drawn, err := e.Update()
	assert.True(t, drawn)
	require.Error(t, err)
	assert.ErrorIs(t, err, rec.Err)
}
