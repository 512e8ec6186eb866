package eyes

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *Recorder, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClock()
	rec := &Recorder{}
	base := []Option{WithClock(clock), WithRand(rand.New(rand.NewSource(1)))}
	e, err := New(rec, DefaultConfig(), append(base, opts...)...)
	require.NoError(t, err)
	return e, rec, clock
}

// frames draws n frames regardless of the frame interval.
func frames(t *testing.T, e *Engine, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, e.Frame())
	}
}

func TestNew_InitialPositions(t *testing.T) {
	e, _, _ := newTestEngine(t)

	l, r := e.Eye(Left), e.Eye(Right)
	assert.Equal(t, 23, l.X.Target)
	assert.Equal(t, 14, l.Y.Target)
	assert.Equal(t, 69, r.X.Target)
	assert.Equal(t, 14, r.Y.Target)

	assert.Equal(t, 1, l.Height.Current, "eyes start closed")
	assert.Equal(t, 1, r.Height.Current, "eyes start closed")
	assert.Equal(t, DefaultEyeHeight, l.Height.Target)
	assert.Equal(t, 8, l.Radius.Current)
	assert.Equal(t, 10, e.Layout().Space.Current)
}

func TestNew_EyeGeometryCentresSmallMatrix(t *testing.T) {
	e, err := New(&Recorder{}, Config{ScreenWidth: 32, ScreenHeight: 16, FPS: 50},
		WithClock(clockwork.NewFakeClock()), WithEyeGeometry(12, 12, 3, 4))
	require.NoError(t, err)

	l, r := e.Eye(Left), e.Eye(Right)
	assert.Equal(t, 2, l.X.Target)
	assert.Equal(t, 2, l.Y.Target)
	assert.Equal(t, 18, r.X.Target)
	assert.Equal(t, 12, l.DefaultWidth)
	assert.Equal(t, 12, r.DefaultHeight)
	assert.Equal(t, 3, l.Radius.Current)
	assert.Equal(t, 4, e.Layout().Space.Current)

	assert.Equal(t, 4, e.ScreenConstraintX())
	e.SetPosition(Center)
	assert.Equal(t, 2, e.Eye(Left).X.Target, "centre agrees with the initial layout")
	assert.Equal(t, 2, e.Eye(Left).Y.Target)
}

func TestWithEyeGeometry_Clamps(t *testing.T) {
	e, err := New(&Recorder{}, DefaultConfig(), WithEyeGeometry(0, -3, -1, -2))
	require.NoError(t, err)

	l := e.Eye(Left)
	assert.Equal(t, 1, l.DefaultWidth)
	assert.Equal(t, 1, l.DefaultHeight)
	assert.Equal(t, 0, l.DefaultRadius)
	assert.Equal(t, -2, e.Layout().DefaultSpace)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		r       Renderer
		cfg     Config
		wantErr error
	}{
		{"nil renderer", nil, DefaultConfig(), ErrNilRenderer},
		{"zero width", &Recorder{}, Config{ScreenWidth: 0, ScreenHeight: 64, FPS: 50}, ErrInvalidScreen},
		{"negative height", &Recorder{}, Config{ScreenWidth: 128, ScreenHeight: -1, FPS: 50}, ErrInvalidScreen},
		{"zero fps", &Recorder{}, Config{ScreenWidth: 128, ScreenHeight: 64, FPS: 0}, ErrInvalidFrameRate},
		{"negative fps", &Recorder{}, Config{ScreenWidth: 128, ScreenHeight: 64, FPS: -3}, ErrInvalidFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.r, tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestOpen_ReachesDefaultHeight(t *testing.T) {
	e, _, _ := newTestEngine(t)

	// log2(36) is a bit over 5; the floor residue leaves the height one
	// short of the default.
	for i := 0; i < 8; i++ {
		require.NoError(t, e.Frame())
		assert.Greater(t, e.Eye(Left).Height.Current, 0)
	}
	assert.GreaterOrEqual(t, e.Eye(Left).Height.Current, DefaultEyeHeight-1)
	assert.GreaterOrEqual(t, e.Eye(Right).Height.Current, DefaultEyeHeight-1)

	settled := e.Eye(Left).Height.Current
	frames(t, e, 10)
	assert.Equal(t, settled, e.Eye(Left).Height.Current)
}

func TestBlink_DipThenRecover(t *testing.T) {
	e, _, _ := newTestEngine(t)
	frames(t, e, 10)
	start := e.Eye(Left).Height.Current

	e.Blink()

	var heights []int
	for i := 0; i < 14; i++ {
		require.NoError(t, e.Frame())
		heights = append(heights, e.Eye(Left).Height.Current)
	}

	bottom := 0
	for i, h := range heights {
		if h == 1 {
			bottom = i
			break
		}
	}
	require.NotZero(t, bottom, "eye never closed: %v", heights)

	for i := 1; i <= bottom; i++ {
		assert.Less(t, heights[i], heights[i-1], "closing must be strictly decreasing: %v", heights)
	}
	for i := bottom + 1; i < len(heights) && heights[i] < start; i++ {
		assert.Greater(t, heights[i], heights[i-1], "opening must be strictly increasing: %v", heights)
	}
	assert.Equal(t, start, heights[len(heights)-1])
}

func TestBlinkEyes_Single(t *testing.T) {
	e, _, _ := newTestEngine(t)
	frames(t, e, 10)

	e.BlinkEyes(false, true)
	require.NoError(t, e.Frame())

	assert.Equal(t, DefaultEyeHeight, e.Eye(Left).Height.Target)
	assert.Equal(t, 1, e.Eye(Right).Height.Target)
	assert.True(t, e.Eye(Right).Open)
}

func TestClose_StaysClosedUntilOpened(t *testing.T) {
	e, _, _ := newTestEngine(t)
	frames(t, e, 10)

	e.Close()
	frames(t, e, 20)
	assert.Equal(t, 1, e.Eye(Left).Height.Current)
	assert.Equal(t, 1, e.Eye(Right).Height.Current)

	e.Open()
	frames(t, e, 10)
	assert.GreaterOrEqual(t, e.Eye(Left).Height.Current, DefaultEyeHeight-1)
}

func TestRightEyeTargetFollowsLeft(t *testing.T) {
	e, _, _ := newTestEngine(t)

	steps := []func(){
		func() {},
		func() { e.SetPosition(East) },
		func() { e.SetSpaceBetween(-4) },
		func() { e.SetWidth(20, 30) },
		func() { e.SetPosition(SouthWest) },
		func() { e.SetSpaceBetween(25) },
	}
	for _, change := range steps {
		change()
		for i := 0; i < 4; i++ {
			require.NoError(t, e.Frame())
			l, r := e.Eye(Left), e.Eye(Right)
			assert.Equal(t, l.X.Target+l.Width.Current+e.Layout().Space.Current, r.X.Target)
			assert.Equal(t, l.Y.Target, r.Y.Target)
		}
	}
}

func TestSetPosition_Compass(t *testing.T) {
	tests := []struct {
		pos  Position
		x, y int
	}{
		{Center, 23, 14},
		{North, 23, 0},
		{NorthEast, 46, 0},
		{East, 46, 14},
		{SouthEast, 46, 28},
		{South, 23, 28},
		{SouthWest, 0, 28},
		{West, 0, 14},
		{NorthWest, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			e.SetPosition(tt.pos)
			assert.Equal(t, tt.x, e.Eye(Left).X.Target)
			assert.Equal(t, tt.y, e.Eye(Left).Y.Target)
		})
	}
}

func TestSetters_ClampDegenerateSizes(t *testing.T) {
	e, _, _ := newTestEngine(t)

	e.SetWidth(0, -5)
	e.SetHeight(0, 0)
	e.SetBorderRadius(-1, 3)
	frames(t, e, 20)

	l, r := e.Eye(Left), e.Eye(Right)
	assert.Equal(t, 1, l.DefaultWidth)
	assert.Equal(t, 1, r.DefaultWidth)
	assert.Equal(t, 1, l.DefaultHeight)
	assert.Equal(t, 0, l.DefaultRadius)
	assert.Equal(t, 3, r.DefaultRadius)
	assert.GreaterOrEqual(t, l.Height.Current, 1)
}

func TestDegenerateScreen_DoesNotPanic(t *testing.T) {
	rec := &Recorder{}
	e, err := New(rec, Config{ScreenWidth: 16, ScreenHeight: 8, FPS: 50},
		WithClock(clockwork.NewFakeClock()), WithRand(rand.New(rand.NewSource(3))))
	require.NoError(t, err)

	e.SetIdleMode(true, 0, 0)
	e.SetCuriosity(true)
	e.SetSpaceBetween(-40)
	e.Confused()
	e.Laugh()

	assert.NotPanics(t, func() { frames(t, e, 50) })
	assert.Equal(t, 0, e.Eye(Left).X.Target, "negative range collapses to zero")
}
