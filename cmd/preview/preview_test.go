package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nifri2/robo-eyes/cmd"
	"nifri2/robo-eyes/eyes"
	"nifri2/robo-eyes/internal/config"
	"nifri2/robo-eyes/internal/logging"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func newTestPreview() *preview {
	return newPreview(nil, nil, &config.Config{Idle: true, AutoBlink: true}, func() {})
}

func TestHandleKey_Commands(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"tired", runeKey('2'), "mood tired"},
		{"happy", runeKey('4'), "mood happy"},
		{"blink", runeKey(' '), "blink"},
		{"confused", runeKey('c'), "confused"},
		{"laugh", runeKey('g'), "laugh"},
		{"idle toggles off", runeKey('i'), "idle off"},
		{"autoblink toggles off", runeKey('a'), "autoblink off"},
		{"curious toggles on", runeKey('u'), "curious on"},
		{"cyclops toggles on", runeKey('y'), "cyclops on"},
		{"unbound", runeKey('z'), ""},
		{"unbound key", key(tcell.KeyTab), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPreview()
			line, quit := p.handleKey(tt.ev)
			assert.False(t, quit)
			assert.Equal(t, tt.want, line)
			if line != "" {
				assert.NoError(t, cmd.Run(mustEngine(t), line))
			}
		})
	}
}

func TestHandleKey_Gaze(t *testing.T) {
	p := newTestPreview()

	steps := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{key(tcell.KeyUp), "pos n"},
		{runeKey('l'), "pos ne"},
		{key(tcell.KeyRight), "pos ne"},
		{runeKey('j'), "pos e"},
		{runeKey('j'), "pos se"},
		{runeKey('h'), "pos s"},
		{key(tcell.KeyLeft), "pos sw"},
		{runeKey('k'), "pos w"},
		{runeKey('0'), "pos center"},
	}
	for _, s := range steps {
		line, _ := p.handleKey(s.ev)
		assert.Equal(t, s.want, line)
	}
}

func TestHandleKey_Quit(t *testing.T) {
	for _, ev := range []*tcell.EventKey{runeKey('q'), key(tcell.KeyEscape), key(tcell.KeyCtrlC)} {
		_, quit := newTestPreview().handleKey(ev)
		assert.True(t, quit)
	}
}

func TestHandleKey_CommandLine(t *testing.T) {
	p := newTestPreview()

	line, _ := p.handleKey(runeKey(':'))
	assert.Empty(t, line)
	assert.True(t, p.typing)

	for _, r := range "moox" {
		p.handleKey(runeKey(r))
	}
	p.handleKey(key(tcell.KeyBackspace2))
	p.handleKey(key(tcell.KeyBackspace2))
	for _, r := range "od angry" {
		p.handleKey(runeKey(r))
	}

	line, quit := p.handleKey(key(tcell.KeyEnter))
	assert.False(t, quit)
	assert.Equal(t, "mood angry", line)
	assert.False(t, p.typing)

	// q is text while typing.
	p.handleKey(runeKey(':'))
	_, quit = p.handleKey(runeKey('q'))
	assert.False(t, quit)
	line, quit = p.handleKey(key(tcell.KeyEscape))
	assert.Empty(t, line)
	assert.False(t, quit)
	assert.False(t, p.typing)
}

func TestSubmit(t *testing.T) {
	p := newTestPreview()
	out := make(chan cmd.Command, 1)

	p.submit(context.Background(), "@worker-0 laugh", out)
	got := <-out
	assert.Equal(t, "laugh", got.Verb)
	assert.Equal(t, "@worker-0 laugh", p.status)

	p.submit(context.Background(), `mood "happy`, out)
	assert.Empty(t, out)
	assert.Contains(t, p.status, cmd.ErrBadArgument.Error())
}

func TestRunScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "faces.txt")
	require.NoError(t, os.WriteFile(path, []byte("# startup\nmood happy\n\ncyclops on\n"), 0o644))

	e := mustEngine(t)
	require.NoError(t, runScript(e, path, logging.L()))
	assert.Equal(t, eyes.MoodHappy, e.Mood())
	assert.True(t, e.Cyclops())

	require.NoError(t, os.WriteFile(path, []byte("mood happy\nwiggle\n"), 0o644))
	err := runScript(mustEngine(t), path, logging.L())
	assert.ErrorIs(t, err, cmd.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "faces.txt:2")
}

func TestConfigure(t *testing.T) {
	cfg := &config.Config{
		Mood:      "angry",
		AutoBlink: true, BlinkInterval: eyes.DefaultBlinkInterval,
	}
	e := mustEngine(t)
	configure(e, cfg)

	assert.Equal(t, eyes.MoodAngry, e.Mood())
	assert.True(t, e.AutoBlinker())
	assert.False(t, e.IdleMode())
}

func TestEngineOptions_CentresConfiguredEyes(t *testing.T) {
	cfg := &config.Config{
		ScreenWidth: 128, ScreenHeight: 64, FPS: 50,
		EyeWidth: 20, EyeHeight: 30, Radius: 4, Space: 6,
	}
	e, err := eyes.New(&eyes.Recorder{}, cfg.Engine(), engineOptions(cfg, logging.L())...)
	require.NoError(t, err)

	l, r := e.Eye(eyes.Left), e.Eye(eyes.Right)
	assert.Equal(t, 20, l.DefaultWidth)
	assert.Equal(t, 30, l.DefaultHeight)
	assert.Equal(t, 4, l.DefaultRadius)
	assert.Equal(t, 6, e.Layout().DefaultSpace)

	// (128 - 46) / 2 and (64 - 30) / 2
	assert.Equal(t, 41, l.X.Target)
	assert.Equal(t, 17, l.Y.Target)
	assert.Equal(t, 67, r.X.Target)

	e.SetPosition(eyes.Center)
	assert.Equal(t, 41, e.Eye(eyes.Left).X.Target)
	assert.Equal(t, 17, e.Eye(eyes.Left).Y.Target)
}

func mustEngine(t *testing.T) *eyes.Engine {
	t.Helper()
	e, err := eyes.New(&eyes.Recorder{}, eyes.DefaultConfig())
	require.NoError(t, err)
	return e
}
