package eyes

import (
	"fmt"
	"time"
)

// frameLimiter caps how often the pipeline runs. A late poll just runs one
// frame late; missed frames are not made up.
type frameLimiter struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// frameInterval converts fps to whole milliseconds, rounding down, so the
// effective rate is never below the requested one.
func frameInterval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrameRate, fps)
	}
	return time.Duration(1000/fps) * time.Millisecond, nil
}

func (f *frameLimiter) due(now time.Time) bool {
	return !f.started || now.Sub(f.last) >= f.interval
}

func (f *frameLimiter) mark(now time.Time) {
	f.last = now
	f.started = true
}
