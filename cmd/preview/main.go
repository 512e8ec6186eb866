// Command preview animates the eyes in a terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"nifri2/robo-eyes/cmd"
	"nifri2/robo-eyes/eyes"
	"nifri2/robo-eyes/internal/config"
	"nifri2/robo-eyes/internal/logging"
	"nifri2/robo-eyes/raster"
	"nifri2/robo-eyes/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := logging.Init(logOut, cfg.LogLevel, cfg.LogFormat)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	display := terminal.NewDisplay(screen, cfg.ScreenWidth, cfg.ScreenHeight)
	cols, rows := display.Cells()
	w, h := screen.Size()
	display.SetOrigin(max((w-cols)/2, 0), max((h-rows-1)/2, 0))

	engine, err := eyes.New(raster.NewCanvas(display), cfg.Engine(), engineOptions(cfg, logger)...)
	if err != nil {
		return err
	}
	configure(engine, cfg)
	if cfg.Script != "" {
		if err := runScript(engine, cfg.Script, logger); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := newPreview(screen, display, cfg, cancel)
	commands := make(chan cmd.Command, 16)
	go p.pollEvents(ctx, commands)

	err = cmd.RunWorker(ctx, cmd.Settings{Role: cmd.Worker, Address: cmd.Worker_0}, engine, commands, logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// engineOptions lays the eyes out with the configured size from the start,
// so they are centred before the first frame.
func engineOptions(cfg *config.Config, logger *slog.Logger) []eyes.Option {
	return []eyes.Option{
		eyes.WithLogger(logger),
		eyes.WithEyeGeometry(cfg.EyeWidth, cfg.EyeHeight, cfg.Radius, cfg.Space),
	}
}

func configure(e *eyes.Engine, cfg *config.Config) {
	if m, err := cmd.ParseMood(cfg.Mood); err == nil {
		e.SetMood(m)
	}
	e.SetAutoBlinker(cfg.AutoBlink, cfg.BlinkInterval, cfg.BlinkVariation)
	e.SetIdleMode(cfg.Idle, cfg.IdleInterval, cfg.IdleVariation)
}

// runScript executes every command line of a file. Blank and comment
// lines are skipped.
func runScript(e *eyes.Engine, path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		err := cmd.Run(e, scanner.Text())
		if errors.Is(err, cmd.ErrEmptyCommand) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, n, err)
		}
		logger.Debug("Script command", "line", n, "command", scanner.Text())
	}
	return scanner.Err()
}
