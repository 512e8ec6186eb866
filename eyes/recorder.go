package eyes

// Op names a recorded draw call.
type Op int

const (
	OpClear Op = 0x00 + iota
	OpRoundRect
	OpTriangle
	OpPresent
)

// Call is one recorded draw call. Args holds the coordinates in call order.
type Call struct {
	Op    Op
	Args  []int
	Color Color
}

// Recorder is a headless Renderer that keeps every call of the last frame
// and counts presented frames.
type Recorder struct {
	Calls  []Call
	Frames int
	Err    error // returned from Present when set
}

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.Calls = append(r.Calls, Call{Op: OpClear})
}

func (r *Recorder) FillRoundRect(x, y, w, h, radius int, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpRoundRect, Args: []int{x, y, w, h, radius}, Color: c})
}

func (r *Recorder) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpTriangle, Args: []int{x0, y0, x1, y1, x2, y2}, Color: c})
}

func (r *Recorder) Present() error {
	r.Calls = append(r.Calls, Call{Op: OpPresent})
	if r.Err != nil {
		return r.Err
	}
	r.Frames++
	return nil
}

// Filter returns the recorded calls of one kind.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
