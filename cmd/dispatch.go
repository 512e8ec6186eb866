package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/jonboulle/clockwork"
)

const ProjectedFPS = 50

const (
	// WatchdogTimeout is what the firmware configures on the board.
	WatchdogTimeout = 5 * time.Second
	// FeedInterval is how often the watchdog is fed while the loop waits.
	FeedInterval = time.Second
)

// Pin is a digital input, e.g. machine.Pin configured as PinInput.
type Pin interface {
	Get() bool
}

// Watchdog is fed once per dispatcher cycle.
type Watchdog interface {
	Update()
}

// RadioIntents maps radio codes to the intent broadcast to every worker.
// 0x00-0x03 are single presses of buttons A-D, 0x04-0x13 double presses
// (see RadioCode).
var RadioIntents = map[int]string{
	0x00: "mood default",
	0x01: "mood happy",
	0x02: "mood tired",
	0x03: "mood angry",

	0x04: "pos nw",
	0x05: "pos n",
	0x06: "pos ne",
	0x07: "pos center",
	0x08: "pos w",
	0x09: "blink",
	0x0A: "pos e",
	0x0B: "confused",
	0x0C: "pos sw",
	0x0D: "pos s",
	0x0E: "pos se",
	0x0F: "laugh",

	0x10: "idle on",
	0x11: "idle off",
	0x12: "curious on",
	0x13: "cyclops on",
}

// Intents are the expressions the dispatcher picks from when idle.
var Intents = []string{
	"mood happy",
	"mood tired",
	"mood angry",
	"laugh",
	"confused",
	"blink",
	"pos ne",
	"pos nw",
	"pos e",
	"pos w",
	"pos n",
	"pos s",
}

// Reset lines return the workers to a neutral face after an intent.
var Reset = []string{"mood default", "pos center"}

// RadioCode combines one or two presses into a code. p2 < 0 means the
// second press timed out.
// Value = 4 + (p1 * 4) + p2 for double presses
func RadioCode(p1, p2 int) byte {
	if p2 < 0 {
		return byte(p1)
	}
	return byte(4 + (p1 << 2) | p2)
}

// DispatcherLoop sends intents to the workers over a shared line.
type DispatcherLoop struct {
	workers  []Address
	out      io.Writer
	clock    clockwork.Clock
	rand     *rand.Rand
	logger   *slog.Logger
	watchdog Watchdog

	// Hold is how long an intent stays before the reset.
	Hold time.Duration
}

func NewDispatcher(out io.Writer, clock clockwork.Clock, rng *rand.Rand, logger *slog.Logger, workers ...Address) *DispatcherLoop {
	if len(workers) == 0 {
		workers = []Address{Worker_0, Worker_1, Worker_2, Worker_3}
	}
	return &DispatcherLoop{
		workers: workers,
		out:     out,
		clock:   clock,
		rand:    rng,
		logger:  logger,
		// Hold = 50 frames at ProjectedFPS
		Hold: time.Duration(50*1000/ProjectedFPS) * time.Millisecond,
	}
}

func (d *DispatcherLoop) SetWatchdog(w Watchdog) {
	d.watchdog = w
}

// Send writes one addressed intent line.
func (d *DispatcherLoop) Send(addr Address, intent string) error {
	if _, err := fmt.Fprintf(d.out, "@%s %s\n", addr, intent); err != nil {
		return fmt.Errorf("send to %s: %w", addr, err)
	}
	return nil
}

// Broadcast sends the intent to every worker in turn.
func (d *DispatcherLoop) Broadcast(intents ...string) error {
	for _, intent := range intents {
		for _, addr := range d.workers {
			if err := d.Send(addr, intent); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run is the dispatcher's main loop: a random intent every 2-6 seconds,
// radio intents as soon as they arrive. The watchdog is fed every
// FeedInterval, including during the pause and the hold.
func (d *DispatcherLoop) Run(ctx context.Context, radio <-chan byte) error {
	d.logger.Info("Starting Dispatcher Loop", "workers", len(d.workers))

	feed := d.clock.NewTicker(FeedInterval)
	defer feed.Stop()

	inter := 0 // Counter for 'still alive' messages
	for {
		d.feedWatchdog()

		// Random sleep 2-6 seconds
		sleepDuration := time.Duration(2000+d.rand.Intn(4001)) * time.Millisecond
		intent := Intents[d.rand.Intn(len(Intents))]

		code, radioed, err := d.wait(ctx, sleepDuration, feed.Chan(), radio)
		if err != nil {
			return err
		}
		if radioed {
			mapped, ok := RadioIntents[int(code)]
			if !ok {
				d.logger.Warn("Unmapped radio code", "code", fmt.Sprintf("0x%02X", code))
				continue
			}
			d.logger.Info("Radio intent", "code", fmt.Sprintf("0x%02X", code), "intent", mapped)
			if err := d.Broadcast(mapped); err != nil {
				return err
			}
			continue
		}

		if err := d.Broadcast(intent); err != nil {
			return err
		}

		// Radio presses wait until the hold is over
		if _, _, err := d.wait(ctx, d.Hold, feed.Chan(), nil); err != nil {
			return err
		}

		if err := d.Broadcast(Reset...); err != nil {
			return err
		}

		inter++
		d.logger.Debug("still alive", "cycle", inter, "intent", intent)
	}
}

// wait blocks for dur and feeds the watchdog on every tick. A radio code
// ends the wait early and is returned.
func (d *DispatcherLoop) wait(ctx context.Context, dur time.Duration, feed <-chan time.Time, radio <-chan byte) (byte, bool, error) {
	timer := d.clock.NewTimer(dur)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return 0, false, ctx.Err()
		case <-feed:
			d.feedWatchdog()
		case code := <-radio:
			return code, true, nil
		case <-timer.Chan():
			return 0, false, nil
		}
	}
}

func (d *DispatcherLoop) feedWatchdog() {
	if d.watchdog != nil {
		d.watchdog.Update()
	}
}

// WatchRadio turns presses on the radio pins into codes.
// 1. Detect First Press (P1)
// 2. Wait up to 1 second for Second Press (P2)
// 3. If P2 occurs: Value = 4 + (P1 << 2) | P2. (Range 0x04-0x13)
// 4. If Timeout: Value = P1. (Range 0-3)
func WatchRadio(ctx context.Context, pins []Pin, clock clockwork.Clock, out chan<- byte) {
	getPressedPin := func() int {
		for i, pin := range pins {
			if pin.Get() {
				return i
			}
		}
		return -1
	}
	wait := func() bool {
		select {
		case <-ctx.Done():
			return false
		case <-clock.After(10 * time.Millisecond):
			return true
		}
	}

	for {
		// 1. Wait for first press
		p1 := getPressedPin()
		for p1 == -1 {
			if !wait() {
				return
			}
			p1 = getPressedPin()
		}

		// Wait for release (Debounce / Separation)
		for getPressedPin() != -1 {
			if !wait() {
				return
			}
		}

		// 2. Wait up to 1 second for second press
		p2 := -1
		timeout := clock.Now().Add(1 * time.Second)
		for clock.Now().Before(timeout) {
			if p := getPressedPin(); p != -1 {
				p2 = p
				break
			}
			if !wait() {
				return
			}
		}

		if p2 != -1 {
			// Wait for release of second button
			for getPressedPin() != -1 {
				if !wait() {
					return
				}
			}
		}

		select {
		case out <- RadioCode(p1, p2):
		case <-ctx.Done():
			return
		}
	}
}
