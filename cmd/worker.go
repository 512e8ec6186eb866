package cmd

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"nifri2/robo-eyes/eyes"
)

// RunWorker owns the engine: it applies intents addressed to this worker
// and polls the engine for frames until ctx is done.
func RunWorker(ctx context.Context, config Settings, engine *eyes.Engine, commands <-chan Command, logger *slog.Logger) error {
	logger.Info("Starting Worker Loop", "address", config.Address)

	var frames, failed int64
	for {
		select {
		case <-ctx.Done():
			logger.Info("Worker stopped", "frames", frames, "failed_frames", failed)
			return ctx.Err()
		case cmd := <-commands:
			if !cmd.For(config.Address) {
				break
			}
			if err := Execute(engine, cmd); err != nil {
				logger.Warn("Rejected command", "command", cmd.String(), "error", err)
			} else {
				logger.Info("Applied command", "command", cmd.String())
			}
		default:
		}

		drawn, err := engine.Update()
		if err != nil {
			failed++
			// Keep animating; a glitched bus usually recovers on the next frame.
			logger.Debug("Frame failed", "error", err)
		} else if drawn {
			frames++
		}

		// Yield to the reader goroutine
		time.Sleep(time.Millisecond)
	}
}

// ReadCommands scans intent lines from r and forwards the ones addressed to
// addr. Malformed lines are logged and skipped.
func ReadCommands(ctx context.Context, r io.Reader, addr Address, out chan<- Command, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd, err := ParseCommand(scanner.Text())
		if errors.Is(err, ErrEmptyCommand) {
			continue
		}
		if err != nil {
			logger.Warn("Invalid command line", "line", scanner.Text(), "error", err)
			continue
		}
		if !cmd.For(addr) {
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}
