package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nifri2/robo-eyes/eyes"
)

func ParseRole(r string) Role {
	switch r {
	case "worker":
		return Worker
	default:
		return Dispatcher
	}
}

var addressNames = map[string]Address{
	"dispatch": Dispatch,
	"worker-0": Worker_0,
	"worker-1": Worker_1,
	"worker-2": Worker_2,
	"worker-3": Worker_3,
	"all":      Broadcast,
}

func ParseAddress(a string) Address {
	if addr, ok := addressNames[a]; ok && addr != Broadcast {
		return addr
	}
	return Dispatch
}

func (a Address) String() string {
	for name, addr := range addressNames {
		if addr == a {
			return name
		}
	}
	return fmt.Sprintf("address(%d)", int(a))
}

func ParseDisplay(d string) Display {
	switch d {
	case "matrix", "ws2812":
		return Display_Matrix
	default:
		return Display_OLED
	}
}

func ParseMood(s string) (eyes.Mood, error) {
	switch strings.ToLower(s) {
	case "default", "neutral":
		return eyes.MoodDefault, nil
	case "tired":
		return eyes.MoodTired, nil
	case "angry":
		return eyes.MoodAngry, nil
	case "happy":
		return eyes.MoodHappy, nil
	}
	return eyes.MoodDefault, fmt.Errorf("%w: mood %q", ErrBadArgument, s)
}

func ParsePosition(s string) (eyes.Position, error) {
	s = strings.ToLower(s)
	for p := eyes.Center; p <= eyes.NorthWest; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	if s == "default" || s == "c" {
		return eyes.Center, nil
	}
	return eyes.Center, fmt.Errorf("%w: position %q", ErrBadArgument, s)
}

func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "1", "true", "yes":
		return true, nil
	case "off", "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("%w: switch %q", ErrBadArgument, s)
}

// parseDuration accepts Go durations; a bare number is whole seconds.
func parseDuration(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q", ErrBadArgument, s)
	}
	return d, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrBadArgument, s)
	}
	return n, nil
}

// parseSides reads an optional eye selector. No argument means both.
func parseSides(args []string) (left, right bool, err error) {
	if len(args) == 0 {
		return true, true, nil
	}
	switch strings.ToLower(args[0]) {
	case "both":
		return true, true, nil
	case "left", "l":
		return true, false, nil
	case "right", "r":
		return false, true, nil
	}
	return false, false, fmt.Errorf("%w: eye %q", ErrBadArgument, args[0])
}

// parsePair reads `n` or `left right`.
func parsePair(args []string) (int, int, error) {
	if len(args) == 0 || len(args) > 2 {
		return 0, 0, fmt.Errorf("%w: want one or two numbers", ErrBadArgument)
	}
	l, err := parseInt(args[0])
	if err != nil {
		return 0, 0, err
	}
	r := l
	if len(args) == 2 {
		if r, err = parseInt(args[1]); err != nil {
			return 0, 0, err
		}
	}
	return l, r, nil
}
