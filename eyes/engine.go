// Package eyes animates a pair of robot eyes on a small monochrome surface.
//
// An Engine holds the eye geometry and a handful of timers. Callers express
// intents (a mood, a gaze direction, a blink, a shake) through setters and
// poll Update from a single loop; each frame eases every value halfway
// toward its target, fires due macro animations and issues draw calls to a
// Renderer.
package eyes

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
)

type displayFlags struct {
	curious bool
	cyclops bool
}

// Engine owns all animation state. It is not safe for concurrent use;
// drive it from one goroutine.
type Engine struct {
	renderer Renderer
	clock    clockwork.Clock
	rand     Rand
	log      *slog.Logger

	eyes   [2]EyeGeometry
	layout SharedLayout
	mood   Mood
	lids   EyelidOverlay
	flags  displayFlags
	frames frameLimiter

	blinker  cycle
	idle     cycle
	confused oneShot
	laugh    oneShot
	hFlicker flicker
	vFlicker flicker

	// shape is the eye size New lays the pair out with.
	shape eyeShape
}

type eyeShape struct {
	width, height, radius, space int
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock sets the time source. Tests pass a clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithRand sets the random source for blink jitter and idle gaze.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rand = r
	}
}

// WithEyeGeometry sets the eye size and gap the engine starts with. The
// pair is centred for that size from the first frame.
func WithEyeGeometry(width, height, radius, space int) Option {
	return func(e *Engine) {
		e.shape = eyeShape{
			width:  max(width, 1),
			height: max(height, 1),
			radius: max(radius, 0),
			space:  space,
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates an engine with closed eyes centred on the surface. The first
// frames open them.
func New(r Renderer, cfg Config, opts ...Option) (*Engine, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidScreen, cfg.ScreenWidth, cfg.ScreenHeight)
	}
	interval, err := frameInterval(cfg.FPS)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		renderer: r,
		clock:    clockwork.NewRealClock(),
		log:      slog.New(slog.DiscardHandler),
		frames:   frameLimiter{interval: interval},
		blinker: cycle{
			interval:  DefaultBlinkInterval,
			variation: DefaultBlinkVariation,
		},
		idle: cycle{
			interval:  DefaultIdleInterval,
			variation: DefaultIdleVariation,
		},
		confused: newOneShot(DefaultShakeDuration),
		laugh:    newOneShot(DefaultShakeDuration),
		hFlicker: flicker{amplitude: DefaultHFlickerAmplitude},
		vFlicker: flicker{amplitude: DefaultVFlickerAmplitude},
		shape: eyeShape{
			width:  DefaultEyeWidth,
			height: DefaultEyeHeight,
			radius: DefaultBorderRadius,
			space:  DefaultSpaceBetween,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(e.clock.Now().UnixNano()))
	}

	e.layout = SharedLayout{
		Space:        Tween{Current: e.shape.space, Target: e.shape.space},
		DefaultSpace: e.shape.space,
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
	}
	sh := e.shape
	lx := (cfg.ScreenWidth - (sh.width + sh.space + sh.width)) / 2
	ly := (cfg.ScreenHeight - sh.height) / 2
	rx := lx + sh.width + sh.space
	e.eyes[Left] = newEyeGeometry(sh.width, sh.height, sh.radius, lx, ly)
	e.eyes[Right] = newEyeGeometry(sh.width, sh.height, sh.radius, rx, ly)

	e.log.Debug("eyes engine ready",
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenWidth, cfg.ScreenHeight),
		"frame_interval", interval)
	return e, nil
}

// Update draws a frame if the frame interval has elapsed since the last one
// and reports whether it did.
func (e *Engine) Update() (bool, error) {
	now := e.clock.Now()
	if !e.frames.due(now) {
		return false, nil
	}
	e.frames.mark(now)
	return true, e.draw(now)
}

// Frame draws one frame regardless of the frame interval.
func (e *Engine) Frame() error {
	now := e.clock.Now()
	e.frames.mark(now)
	return e.draw(now)
}

func (e *Engine) draw(now time.Time) error {
	e.stepGeometry()
	e.runMacros(now)
	e.applyFlicker()

	e.lids.retarget(e.mood, e.eyes[Left].Height.Current)
	e.lids.step()

	return e.render(e.frameGeometry())
}

// SetFrameRate sets the maximum frames per second.
func (e *Engine) SetFrameRate(fps int) error {
	interval, err := frameInterval(fps)
	if err != nil {
		return err
	}
	e.frames.interval = interval
	return nil
}

// FrameInterval is the minimum time between two frames.
func (e *Engine) FrameInterval() time.Duration {
	return e.frames.interval
}

// SetWidth sets the default and target width of each eye.
func (e *Engine) SetWidth(left, right int) {
	left, right = max(left, 1), max(right, 1)
	e.eyes[Left].Width.Target, e.eyes[Left].DefaultWidth = left, left
	e.eyes[Right].Width.Target, e.eyes[Right].DefaultWidth = right, right
}

// SetHeight sets the default and target height of each eye.
func (e *Engine) SetHeight(left, right int) {
	left, right = max(left, 1), max(right, 1)
	e.eyes[Left].Height.Target, e.eyes[Left].DefaultHeight = left, left
	e.eyes[Right].Height.Target, e.eyes[Right].DefaultHeight = right, right
}

// SetBorderRadius sets the corner radius of each eye. Radii beyond half
// the eye size are left to the renderer.
func (e *Engine) SetBorderRadius(left, right int) {
	left, right = max(left, 0), max(right, 0)
	e.eyes[Left].Radius.Target, e.eyes[Left].DefaultRadius = left, left
	e.eyes[Right].Radius.Target, e.eyes[Right].DefaultRadius = right, right
}

// SetSpaceBetween sets the gap between the eyes. It may be negative.
func (e *Engine) SetSpaceBetween(space int) {
	e.layout.Space.Target = space
	e.layout.DefaultSpace = space
}

func (e *Engine) SetMood(m Mood) {
	switch m {
	case MoodTired, MoodAngry, MoodHappy:
		e.mood = m
	default:
		e.mood = MoodDefault
	}
}

// SetPosition moves the gaze to a predefined spot.
func (e *Engine) SetPosition(p Position) {
	x, y := p.anchor(e.ScreenConstraintX(), e.ScreenConstraintY())
	e.eyes[Left].X.Target = x
	e.eyes[Left].Y.Target = y
}

// SetAutoBlinker switches auto blinking and sets its timing. The next blink
// waits interval plus a random share of variation.
func (e *Engine) SetAutoBlinker(active bool, interval, variation time.Duration) {
	e.blinker.enabled = active
	e.blinker.interval = interval
	e.blinker.variation = variation
}

func (e *Engine) SetAutoBlinkerEnabled(active bool) {
	e.blinker.enabled = active
}

// SetIdleMode switches random gaze wandering and sets its timing.
func (e *Engine) SetIdleMode(active bool, interval, variation time.Duration) {
	e.idle.enabled = active
	e.idle.interval = interval
	e.idle.variation = variation
}

func (e *Engine) SetIdleModeEnabled(active bool) {
	e.idle.enabled = active
}

// SetCuriosity makes the outer eye grow when looking to a side.
func (e *Engine) SetCuriosity(on bool) {
	e.flags.curious = on
}

// SetCyclops draws only the left eye.
func (e *Engine) SetCyclops(on bool) {
	e.flags.cyclops = on
}

// SetHFlicker shakes the eyes left and right by amplitude pixels.
func (e *Engine) SetHFlicker(on bool, amplitude int) {
	e.hFlicker.enabled = on
	e.hFlicker.amplitude = amplitude
}

func (e *Engine) SetHFlickerEnabled(on bool) {
	e.hFlicker.enabled = on
}

// SetVFlicker shakes the eyes up and down by amplitude pixels.
func (e *Engine) SetVFlicker(on bool, amplitude int) {
	e.vFlicker.enabled = on
	e.vFlicker.amplitude = amplitude
}

func (e *Engine) SetVFlickerEnabled(on bool) {
	e.vFlicker.enabled = on
}

func (e *Engine) SetConfusedDuration(d time.Duration) {
	e.confused.duration = d
}

func (e *Engine) SetLaughDuration(d time.Duration) {
	e.laugh.duration = d
}

// Close shuts both eyes.
func (e *Engine) Close() {
	e.CloseEyes(true, true)
}

// Open lets both eyes reopen once they have closed.
func (e *Engine) Open() {
	e.OpenEyes(true, true)
}

// Blink closes and reopens both eyes. The dip plays out over the following
// frames.
func (e *Engine) Blink() {
	e.BlinkEyes(true, true)
}

func (e *Engine) CloseEyes(left, right bool) {
	if left {
		e.eyes[Left].close()
	}
	if right {
		e.eyes[Right].close()
	}
}

func (e *Engine) OpenEyes(left, right bool) {
	if left {
		e.eyes[Left].Open = true
	}
	if right {
		e.eyes[Right].Open = true
	}
}

func (e *Engine) BlinkEyes(left, right bool) {
	e.CloseEyes(left, right)
	e.OpenEyes(left, right)
}

// Confused plays a one-shot horizontal shake. Triggering it again while it
// runs has no further effect.
func (e *Engine) Confused() {
	e.confused.trigger()
}

// Laugh plays a one-shot vertical shake.
func (e *Engine) Laugh() {
	e.laugh.trigger()
}

// ScreenConstraintX is the largest x the left eye can take while keeping
// the pair on screen.
func (e *Engine) ScreenConstraintX() int {
	if e.flags.cyclops {
		return e.layout.ScreenWidth - e.eyes[Left].Width.Current
	}
	return e.layout.ScreenWidth - e.eyes[Left].Width.Current -
		e.layout.Space.Current - e.eyes[Right].Width.Current
}

// ScreenConstraintY is the largest y for the left eye. It uses the default
// height since the current one changes while blinking.
func (e *Engine) ScreenConstraintY() int {
	return e.layout.ScreenHeight - e.eyes[Left].DefaultHeight
}

// Eye returns a copy of one eye's geometry.
func (e *Engine) Eye(s Side) EyeGeometry {
	if s == Right {
		return e.eyes[Right]
	}
	return e.eyes[Left]
}

func (e *Engine) Layout() SharedLayout   { return e.layout }
func (e *Engine) Mood() Mood             { return e.mood }
func (e *Engine) Eyelids() EyelidOverlay { return e.lids }
func (e *Engine) Curious() bool          { return e.flags.curious }
func (e *Engine) Cyclops() bool          { return e.flags.cyclops }
func (e *Engine) HFlicker() bool         { return e.hFlicker.enabled }
func (e *Engine) VFlicker() bool         { return e.vFlicker.enabled }
func (e *Engine) Confusing() bool        { return e.confused.active }
func (e *Engine) Laughing() bool         { return e.laugh.active }
func (e *Engine) AutoBlinker() bool      { return e.blinker.enabled }
func (e *Engine) IdleMode() bool         { return e.idle.enabled }
