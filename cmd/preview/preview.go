package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"nifri2/robo-eyes/cmd"
	"nifri2/robo-eyes/internal/config"
	"nifri2/robo-eyes/terminal"
)

var compass = [3][3]string{
	{"nw", "n", "ne"},
	{"w", "center", "e"},
	{"sw", "s", "se"},
}

var moodKeys = map[rune]string{
	'1': "default",
	'2': "tired",
	'3': "angry",
	'4': "happy",
}

// preview turns key presses into command lines for the worker loop.
type preview struct {
	screen  tcell.Screen
	statusX int
	statusY int
	cancel  context.CancelFunc

	// gaze in -1..1 on each axis
	gazeX, gazeY int

	idle      bool
	autoblink bool
	curious   bool
	cyclops   bool

	typing bool
	line   []rune
	status string
}

func newPreview(screen tcell.Screen, display *terminal.Display, cfg *config.Config, cancel context.CancelFunc) *preview {
	p := &preview{
		screen:    screen,
		cancel:    cancel,
		idle:      cfg.Idle,
		autoblink: cfg.AutoBlink,
		status:    "1-4 mood  hjkl gaze  space blink  c confused  g laugh  : command  q quit",
	}
	if screen != nil && display != nil {
		_, rows := display.Cells()
		p.statusX, p.statusY = display.Origin()
		p.statusY += rows
	}
	return p
}

// pollEvents reads terminal events until ctx is done and forwards the
// resulting commands.
func (p *preview) pollEvents(ctx context.Context, out chan<- cmd.Command) {
	p.drawStatus()
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.screen.Sync()
		case *tcell.EventKey:
			line, quit := p.handleKey(ev)
			if quit {
				p.cancel()
				return
			}
			if line != "" {
				p.submit(ctx, line, out)
			}
			p.drawStatus()
		}
	}
}

func (p *preview) submit(ctx context.Context, line string, out chan<- cmd.Command) {
	c, err := cmd.ParseCommand(line)
	if err != nil {
		p.status = err.Error()
		return
	}
	select {
	case out <- c:
		p.status = c.String()
	case <-ctx.Done():
	}
}

// handleKey returns the command line a key stands for, if any, and whether
// the preview should quit.
func (p *preview) handleKey(ev *tcell.EventKey) (string, bool) {
	if p.typing {
		return p.editLine(ev), false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", true
	case tcell.KeyUp:
		return p.look(0, -1), false
	case tcell.KeyDown:
		return p.look(0, 1), false
	case tcell.KeyLeft:
		return p.look(-1, 0), false
	case tcell.KeyRight:
		return p.look(1, 0), false
	case tcell.KeyRune:
	default:
		return "", false
	}

	r := ev.Rune()
	if mood, ok := moodKeys[r]; ok {
		return "mood " + mood, false
	}
	switch r {
	case 'q':
		return "", true
	case 'k':
		return p.look(0, -1), false
	case 'j':
		return p.look(0, 1), false
	case 'h':
		return p.look(-1, 0), false
	case 'l':
		return p.look(1, 0), false
	case '0':
		p.gazeX, p.gazeY = 0, 0
		return "pos center", false
	case ' ':
		return "blink", false
	case 'c':
		return "confused", false
	case 'g':
		return "laugh", false
	case 'i':
		p.idle = !p.idle
		return "idle " + onOff(p.idle), false
	case 'a':
		p.autoblink = !p.autoblink
		return "autoblink " + onOff(p.autoblink), false
	case 'u':
		p.curious = !p.curious
		return "curious " + onOff(p.curious), false
	case 'y':
		p.cyclops = !p.cyclops
		return "cyclops " + onOff(p.cyclops), false
	case ':':
		p.typing = true
		p.line = p.line[:0]
	}
	return "", false
}

// editLine handles keys while a command is typed. Enter returns the line.
func (p *preview) editLine(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape:
		p.typing = false
	case tcell.KeyEnter:
		p.typing = false
		return string(p.line)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.line) > 0 {
			p.line = p.line[:len(p.line)-1]
		}
	case tcell.KeyRune:
		p.line = append(p.line, ev.Rune())
	}
	return ""
}

// look moves the gaze one step and returns the matching pos command.
func (p *preview) look(dx, dy int) string {
	p.gazeX = min(max(p.gazeX+dx, -1), 1)
	p.gazeY = min(max(p.gazeY+dy, -1), 1)
	return "pos " + compass[p.gazeY+1][p.gazeX+1]
}

func (p *preview) drawStatus() {
	text := p.status
	if p.typing {
		text = ":" + string(p.line)
	}
	w, _ := p.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := p.statusX; x < w; x++ {
		p.screen.SetContent(x, p.statusY, ' ', nil, style)
	}
	for i, r := range []rune(text) {
		p.screen.SetContent(p.statusX+i, p.statusY, r, nil, style)
	}
	p.screen.Show()
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
