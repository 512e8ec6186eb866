package eyes

// Tween is an integer that eases toward Target by halving the remaining
// distance on every step. Integer division truncates, so an odd residue of
// one can persist; callers treat that as settled enough.
type Tween struct {
	Current int
	Target  int
}

func (t *Tween) step() {
	t.Current = (t.Current + t.Target) / 2
}

// stepBiased steps toward Target+bias without storing the bias.
func (t *Tween) stepBiased(bias int) {
	t.Current = (t.Current + t.Target + bias) / 2
}

// Settled reports whether the tween sits on its fixed point.
func (t Tween) Settled() bool {
	return t.Current == t.Target
}

// EyeGeometry is the size and placement of one eye. X and Y address the
// top-left corner.
type EyeGeometry struct {
	Width  Tween
	Height Tween
	Radius Tween
	X      Tween
	Y      Tween

	DefaultWidth  int
	DefaultHeight int
	DefaultRadius int

	// HeightOffset is the curious-gaze enlargement for the current frame.
	HeightOffset int
	// Open lets the height snap back to its default once the eye has shut.
	Open bool
}

func newEyeGeometry(width, height, radius, x, y int) EyeGeometry {
	return EyeGeometry{
		Width:         Tween{Current: width, Target: width},
		Height:        Tween{Current: 1, Target: height},
		Radius:        Tween{Current: radius, Target: radius},
		X:             Tween{Current: x, Target: x},
		Y:             Tween{Current: y, Target: y},
		DefaultWidth:  width,
		DefaultHeight: height,
		DefaultRadius: radius,
	}
}

// stepHeight eases the height and keeps the eye vertically centred while
// it shrinks or grows.
func (g *EyeGeometry) stepHeight() {
	g.Height.stepBiased(g.HeightOffset)
	g.Y.Current += (g.DefaultHeight - g.Height.Current) / 2
	g.Y.Current -= g.HeightOffset / 2

	if g.Open && g.Height.Current <= 1+g.HeightOffset {
		g.Height.Target = g.DefaultHeight
	}
}

func (g *EyeGeometry) close() {
	g.Height.Target = 1
	g.Open = false
}

// SharedLayout holds what both eyes share.
type SharedLayout struct {
	Space        Tween
	DefaultSpace int
	ScreenWidth  int
	ScreenHeight int
}

// stepGeometry runs the tweening stage of a frame. Left-eye fields go first
// because the right eye is positioned relative to them.
func (e *Engine) stepGeometry() {
	l, r := &e.eyes[Left], &e.eyes[Right]

	e.updateCuriosity()

	l.stepHeight()
	r.stepHeight()

	l.Width.step()
	r.Width.step()

	e.layout.Space.step()

	l.X.step()
	l.Y.step()
	r.X.Target = l.X.Target + l.Width.Current + e.layout.Space.Current
	r.Y.Target = l.Y.Target
	r.X.step()
	r.Y.step()

	l.Radius.step()
	r.Radius.step()
}

// updateCuriosity recomputes the curious-gaze height offsets from scratch.
func (e *Engine) updateCuriosity() {
	l, r := &e.eyes[Left], &e.eyes[Right]
	l.HeightOffset, r.HeightOffset = 0, 0
	if !e.flags.curious {
		return
	}

	if l.X.Target <= curiousEdge ||
		(e.flags.cyclops && l.X.Target >= e.ScreenConstraintX()-curiousEdge) {
		l.HeightOffset = curiousOffset
	}
	if r.X.Target >= e.layout.ScreenWidth-r.Width.Current-curiousEdge {
		r.HeightOffset = curiousOffset
	}
}
