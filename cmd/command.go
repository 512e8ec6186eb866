package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/shlex"

	"nifri2/robo-eyes/eyes"
)

// ParseCommand splits an intent line into a Command. A leading `@name`
// addresses one worker; without it the command is broadcast.
func ParseCommand(line string) (Command, error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	cmd := Command{Address: Broadcast}
	if name, ok := strings.CutPrefix(fields[0], "@"); ok {
		addr, known := addressNames[name]
		if !known {
			return Command{}, fmt.Errorf("%w: address %q", ErrBadArgument, name)
		}
		cmd.Address = addr
		fields = fields[1:]
		if len(fields) == 0 {
			return Command{}, ErrEmptyCommand
		}
	}
	cmd.Verb = strings.ToLower(fields[0])
	cmd.Args = fields[1:]
	return cmd, nil
}

func (c Command) String() string {
	parts := append([]string{c.Verb}, c.Args...)
	line := strings.Join(parts, " ")
	if c.Address == Broadcast {
		return line
	}
	return "@" + c.Address.String() + " " + line
}

// Run parses and executes one line.
func Run(e *eyes.Engine, line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	return Execute(e, cmd)
}

// Execute applies a command to the engine.
func Execute(e *eyes.Engine, cmd Command) error {
	args := cmd.Args
	switch cmd.Verb {
	case "mood":
		if len(args) != 1 {
			return argCount(cmd, 1)
		}
		m, err := ParseMood(args[0])
		if err != nil {
			return err
		}
		e.SetMood(m)

	case "pos", "look":
		if len(args) != 1 {
			return argCount(cmd, 1)
		}
		p, err := ParsePosition(args[0])
		if err != nil {
			return err
		}
		e.SetPosition(p)

	case "blink", "open", "close":
		l, r, err := parseSides(args)
		if err != nil {
			return err
		}
		switch cmd.Verb {
		case "blink":
			e.BlinkEyes(l, r)
		case "open":
			e.OpenEyes(l, r)
		default:
			e.CloseEyes(l, r)
		}

	case "autoblink", "idle":
		on, interval, variation, timed, err := parseTimer(cmd)
		if err != nil {
			return err
		}
		switch {
		case cmd.Verb == "autoblink" && timed:
			e.SetAutoBlinker(on, interval, variation)
		case cmd.Verb == "autoblink":
			e.SetAutoBlinkerEnabled(on)
		case timed:
			e.SetIdleMode(on, interval, variation)
		default:
			e.SetIdleModeEnabled(on)
		}

	case "curious", "cyclops":
		if len(args) != 1 {
			return argCount(cmd, 1)
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		if cmd.Verb == "curious" {
			e.SetCuriosity(on)
		} else {
			e.SetCyclops(on)
		}

	case "hflicker", "vflicker":
		if len(args) < 1 || len(args) > 2 {
			return argCount(cmd, 2)
		}
		on, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		if len(args) == 1 {
			if cmd.Verb == "hflicker" {
				e.SetHFlickerEnabled(on)
			} else {
				e.SetVFlickerEnabled(on)
			}
			break
		}
		amp, err := parseInt(args[1])
		if err != nil {
			return err
		}
		if cmd.Verb == "hflicker" {
			e.SetHFlicker(on, amp)
		} else {
			e.SetVFlicker(on, amp)
		}

	case "confused":
		e.Confused()
	case "laugh":
		e.Laugh()

	case "width", "height", "radius":
		l, r, err := parsePair(args)
		if err != nil {
			return err
		}
		switch cmd.Verb {
		case "width":
			e.SetWidth(l, r)
		case "height":
			e.SetHeight(l, r)
		default:
			e.SetBorderRadius(l, r)
		}

	case "space":
		if len(args) != 1 {
			return argCount(cmd, 1)
		}
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		e.SetSpaceBetween(n)

	case "fps":
		if len(args) != 1 {
			return argCount(cmd, 1)
		}
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		return e.SetFrameRate(n)

	case "confused-duration", "laugh-duration":
		if len(args) != 1 {
			return argCount(cmd, 1)
		}
		d, err := parseDuration(args[0])
		if err != nil {
			return err
		}
		if cmd.Verb == "confused-duration" {
			e.SetConfusedDuration(d)
		} else {
			e.SetLaughDuration(d)
		}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Verb)
	}
	return nil
}

// parseTimer reads `<on|off> [interval variation]`.
func parseTimer(cmd Command) (on bool, interval, variation time.Duration, timed bool, err error) {
	args := cmd.Args
	if len(args) != 1 && len(args) != 3 {
		return false, 0, 0, false, fmt.Errorf("%w: %s wants <on|off> [interval variation]", ErrBadArgument, cmd.Verb)
	}
	if on, err = parseSwitch(args[0]); err != nil {
		return false, 0, 0, false, err
	}
	if len(args) == 1 {
		return on, 0, 0, false, nil
	}
	if interval, err = parseDuration(args[1]); err != nil {
		return false, 0, 0, false, err
	}
	if variation, err = parseDuration(args[2]); err != nil {
		return false, 0, 0, false, err
	}
	return on, interval, variation, true, nil
}

func argCount(cmd Command, want int) error {
	return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadArgument, cmd.Verb, want, len(cmd.Args))
}
