package eyes

// Mood selects the eyelid expression. The moods are mutually exclusive.
type Mood int

const (
	MoodDefault Mood = 0x00 + iota
	MoodTired
	MoodAngry
	MoodHappy
)

func (m Mood) String() string {
	switch m {
	case MoodTired:
		return "tired"
	case MoodAngry:
		return "angry"
	case MoodHappy:
		return "happy"
	default:
		return "default"
	}
}

func (m Mood) Tired() bool { return m == MoodTired }
func (m Mood) Angry() bool { return m == MoodAngry }
func (m Mood) Happy() bool { return m == MoodHappy }

// EyelidOverlay is the cut-out geometry drawn over the eyes in background
// ink: slanted top lids for tired and angry, a raised bottom lid for happy.
type EyelidOverlay struct {
	Tired       Tween
	Angry       Tween
	HappyBottom Tween
}

// retarget derives lid targets from the mood and the eye height of this
// frame, not the default height, so lids follow a blink.
func (o *EyelidOverlay) retarget(m Mood, height int) {
	o.Tired.Target, o.Angry.Target, o.HappyBottom.Target = 0, 0, 0
	switch m {
	case MoodTired:
		o.Tired.Target = height / 2
	case MoodAngry:
		o.Angry.Target = height / 2
	case MoodHappy:
		o.HappyBottom.Target = height / 2
	}
}

func (o *EyelidOverlay) step() {
	o.Tired.step()
	o.Angry.step()
	o.HappyBottom.step()
}
