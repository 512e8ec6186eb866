package eyes

import "fmt"

// Renderer is the drawing surface the engine issues one frame of commands
// to: Clear, a series of fills, then Present.
type Renderer interface {
	Clear()
	FillRoundRect(x, y, w, h, r int, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color)
	Present() error
}

// drawnEye is an eye as it appears in one frame.
type drawnEye struct {
	x, y, w, h, r int
	defaultHeight int
}

type frameGeometry struct {
	left, right drawnEye
	cyclops     bool
}

// frameGeometry snapshots what gets drawn. Cyclops hides the right eye here
// only, so the tween state underneath is left alone.
func (e *Engine) frameGeometry() frameGeometry {
	snap := func(g *EyeGeometry) drawnEye {
		return drawnEye{
			x:             g.X.Current,
			y:             g.Y.Current,
			w:             g.Width.Current,
			h:             g.Height.Current,
			r:             g.Radius.Current,
			defaultHeight: g.DefaultHeight,
		}
	}
	f := frameGeometry{
		left:    snap(&e.eyes[Left]),
		right:   snap(&e.eyes[Right]),
		cyclops: e.flags.cyclops,
	}
	if f.cyclops {
		f.right.w, f.right.h = 0, 0
	}
	return f
}

func (e *Engine) render(f frameGeometry) error {
	out := e.renderer
	l, r := f.left, f.right

	out.Clear()

	out.FillRoundRect(l.x, l.y, l.w, l.h, l.r, Foreground)
	if !f.cyclops {
		out.FillRoundRect(r.x, r.y, r.w, r.h, r.r, Foreground)
	}

	tired := e.lids.Tired.Current
	if !f.cyclops {
		out.FillTriangle(l.x, l.y-1, l.x+l.w, l.y-1, l.x, l.y+tired-1, Background)
		out.FillTriangle(r.x, r.y-1, r.x+r.w, r.y-1, r.x+r.w, r.y+tired-1, Background)
	} else {
		mid := l.x + l.w/2
		out.FillTriangle(l.x, l.y-1, mid, l.y-1, l.x, l.y+tired-1, Background)
		out.FillTriangle(mid, l.y-1, l.x+l.w, l.y-1, l.x+l.w, l.y+tired-1, Background)
	}

	angry := e.lids.Angry.Current
	if !f.cyclops {
		out.FillTriangle(l.x, l.y-1, l.x+l.w, l.y-1, l.x+l.w, l.y+angry-1, Background)
		out.FillTriangle(r.x, r.y-1, r.x+r.w, r.y-1, r.x, r.y+angry-1, Background)
	} else {
		mid := l.x + l.w/2
		out.FillTriangle(l.x, l.y-1, mid, l.y-1, mid, l.y+angry-1, Background)
		out.FillTriangle(mid, l.y-1, l.x+l.w, l.y-1, mid, l.y+angry-1, Background)
	}

	happy := e.lids.HappyBottom.Current
	out.FillRoundRect(l.x-1, l.y+l.h-happy+1, l.w+2, l.defaultHeight, l.r, Background)
	if !f.cyclops {
		out.FillRoundRect(r.x-1, r.y+r.h-happy+1, r.w+2, r.defaultHeight, r.r, Background)
	}

	if err := out.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}
