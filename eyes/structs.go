package eyes

import "time"

// Defaults for a 128x64 OLED face.
const (
	DefaultScreenWidth  = 128
	DefaultScreenHeight = 64
	DefaultFPS          = 50

	DefaultEyeWidth     = 36
	DefaultEyeHeight    = 36
	DefaultBorderRadius = 8
	DefaultSpaceBetween = 10

	DefaultBlinkInterval  = 1 * time.Second
	DefaultBlinkVariation = 4 * time.Second
	DefaultIdleInterval   = 1 * time.Second
	DefaultIdleVariation  = 3 * time.Second
	DefaultShakeDuration  = 500 * time.Millisecond

	DefaultHFlickerAmplitude = 2
	DefaultVFlickerAmplitude = 10
)

const (
	confusedAmplitude = 20 // horizontal, px
	laughAmplitude    = 5  // vertical, px

	curiousEdge   = 10
	curiousOffset = 8
)

// Config is the environment the engine is brought up in.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	FPS          int
}

// DefaultConfig returns a 128x64 surface at 50 frames per second.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		FPS:          DefaultFPS,
	}
}

type Side int

const (
	Left Side = 0x00 + iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Color is a monochrome ink.
type Color uint8

const (
	Background Color = 0x00 + iota
	Foreground
)

// Position is a predefined gaze target for the eye pair.
type Position int

const (
	Center Position = 0x00 + iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var positionNames = [...]string{"center", "n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "unknown"
	}
	return positionNames[p]
}

// anchor maps the position onto the box the left eye may occupy.
func (p Position) anchor(maxX, maxY int) (int, int) {
	switch p {
	case North:
		return maxX / 2, 0
	case NorthEast:
		return maxX, 0
	case East:
		return maxX, maxY / 2
	case SouthEast:
		return maxX, maxY
	case South:
		return maxX / 2, maxY
	case SouthWest:
		return 0, maxY
	case West:
		return 0, maxY / 2
	case NorthWest:
		return 0, 0
	default:
		return maxX / 2, maxY / 2
	}
}
