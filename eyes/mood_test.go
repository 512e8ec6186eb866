package eyes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetMood_Exclusive(t *testing.T) {
	e, _, _ := newTestEngine(t)

	e.SetMood(MoodTired)
	assert.True(t, e.Mood().Tired())

	e.SetMood(MoodAngry)
	m := e.Mood()
	assert.False(t, m.Tired())
	assert.True(t, m.Angry())
	assert.False(t, m.Happy())

	e.SetMood(Mood(42))
	assert.Equal(t, MoodDefault, e.Mood())
}

func TestEyelids_FollowMood(t *testing.T) {
	tests := []struct {
		mood      Mood
		wantTired bool
		wantAngry bool
		wantHappy bool
	}{
		{MoodDefault, false, false, false},
		{MoodTired, true, false, false},
		{MoodAngry, false, true, false},
		{MoodHappy, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.mood.String(), func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			frames(t, e, 10)

			e.SetMood(tt.mood)
			require.NoError(t, e.Frame())

			half := e.Eye(Left).Height.Current / 2
			lids := e.Eyelids()
			check := func(on bool, tw Tween) {
				if on {
					assert.Equal(t, half, tw.Target)
					assert.Greater(t, tw.Current, 0)
				} else {
					assert.Zero(t, tw.Target)
					assert.Zero(t, tw.Current)
				}
			}
			check(tt.wantTired, lids.Tired)
			check(tt.wantAngry, lids.Angry)
			check(tt.wantHappy, lids.HappyBottom)
		})
	}
}

func TestEyelids_TrackCurrentHeight(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.SetMood(MoodTired)
	frames(t, e, 10)
	open := e.Eyelids().Tired.Target

	e.Close()
	frames(t, e, 10)
	assert.Less(t, e.Eyelids().Tired.Target, open, "lids shrink with a closing eye")
	assert.Zero(t, e.Eyelids().Tired.Target)
}

func TestEyelids_EaseOutOnMoodChange(t *testing.T) {
	e, _, _ := newTestEngine(t)
	e.SetMood(MoodAngry)
	frames(t, e, 15)
	before := e.Eyelids().Angry.Current
	require.Greater(t, before, 1)

	e.SetMood(MoodTired)
	require.NoError(t, e.Frame())
	lids := e.Eyelids()
	assert.Equal(t, before/2, lids.Angry.Current, "angry lid eases out")
	assert.Greater(t, lids.Tired.Current, 0)
}
