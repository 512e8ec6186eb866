//go:build tinygo

package main

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"machine"
	"math/rand"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/drivers/ws2812"

	"nifri2/robo-eyes/cmd"
	"nifri2/robo-eyes/eyes"
	"nifri2/robo-eyes/raster"
)

// buildRole, buildAddress and buildDisplay are set at compile time via -ldflags
// e.g. -ldflags="-X main.buildRole=worker -X main.buildAddress=worker-0 -X main.buildDisplay=matrix"
var (
	buildRole    string
	buildAddress string
	buildDisplay string
)

var config = cmd.Settings{
	Role:    cmd.ParseRole(buildRole),
	Address: cmd.ParseAddress(buildAddress),
	Display: cmd.ParseDisplay(buildDisplay),
}

// uartReader blocks until the UART has data, so bufio.Scanner never sees
// an empty read.
type uartReader struct {
	uart *machine.UART
}

func (u uartReader) Read(p []byte) (int, error) {
	for u.uart.Buffered() == 0 {
		time.Sleep(time.Millisecond)
	}
	return u.uart.Read(p)
}

func main() {

	var uart *machine.UART = machine.UART0

	uart.Configure(machine.UARTConfig{
		BaudRate: 38400,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	clock := clockwork.NewRealClock()
	ctx := context.Background()

	// blink LED based on role, 2 times, 200ms interval for Dispatcher, 5 times 40ms for Worker

	switch config.Role {
	case cmd.Dispatcher:
		for i := 0; i < 2; i++ {
			led.High()
			time.Sleep(200 * time.Millisecond)
			led.Low()
			time.Sleep(200 * time.Millisecond)
		}
	case cmd.Worker:
		for i := 0; i < 5; i++ {
			led.High()
			time.Sleep(40 * time.Millisecond)
			led.Low()
			time.Sleep(40 * time.Millisecond)
		}
	}

	// Main loop

	switch config.Role {
	case cmd.Dispatcher:
		runDispatcher(ctx, uart, clock, logger)

	case cmd.Worker:
		runWorker(ctx, uart, clock, logger)
	}

}

func runDispatcher(ctx context.Context, uart io.Writer, clock clockwork.Clock, logger *slog.Logger) {
	machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: uint32(cmd.WatchdogTimeout.Milliseconds())})
	machine.Watchdog.Start()

	radioPins := []machine.Pin{machine.GP16, machine.GP17, machine.GP18, machine.GP19}
	pins := make([]cmd.Pin, len(radioPins))
	for i, p := range radioPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
		pins[i] = p
	}

	radio := make(chan byte, 4)
	go cmd.WatchRadio(ctx, pins, clock, radio)

	d := cmd.NewDispatcher(uart, clock, rand.New(rand.NewSource(clock.Now().UnixNano())), logger)
	d.SetWatchdog(machine.Watchdog)
	if err := d.Run(ctx, radio); err != nil {
		logger.Error("Dispatcher stopped", "error", err)
	}
}

func runWorker(ctx context.Context, uart *machine.UART, clock clockwork.Clock, logger *slog.Logger) {
	canvas, screen := setupDisplay()

	opts := []eyes.Option{eyes.WithClock(clock), eyes.WithLogger(logger)}
	if config.Display == cmd.Display_Matrix {
		// 32x16 needs smaller eyes
		opts = append(opts, eyes.WithEyeGeometry(12, 12, 3, 4))
	}
	engine, err := eyes.New(canvas, screen, opts...)
	if err != nil {
		logger.Error("Engine setup failed", "error", err)
		return
	}
	engine.SetAutoBlinker(true, eyes.DefaultBlinkInterval, eyes.DefaultBlinkVariation)
	engine.SetIdleMode(true, eyes.DefaultIdleInterval, eyes.DefaultIdleVariation)

	commands := make(chan cmd.Command, 8)
	go func() {
		if err := cmd.ReadCommands(ctx, uartReader{uart}, config.Address, commands, logger); err != nil {
			logger.Error("UART reader stopped", "error", err)
		}
	}()

	if err := cmd.RunWorker(ctx, config, engine, commands, logger); err != nil {
		logger.Error("Worker stopped", "error", err)
	}
}

func setupDisplay() (*raster.Canvas, eyes.Config) {
	switch config.Display {
	case cmd.Display_Matrix:
		left, right := machine.GP2, machine.GP3
		left.Configure(machine.PinConfig{Mode: machine.PinOutput})
		right.Configure(machine.PinConfig{Mode: machine.PinOutput})
		l, r := ws2812.New(left), ws2812.New(right)

		// Full white draws too much current from the board's regulator
		matrix := raster.NewMatrix(raster.PanelSize, color.RGBA{R: 0, G: 40, B: 60, A: 255}, &l, &r)
		w, h := matrix.Size()
		return raster.NewCanvas(matrix), eyes.Config{ScreenWidth: int(w), ScreenHeight: int(h), FPS: eyes.DefaultFPS}

	default:
		machine.I2C0.Configure(machine.I2CConfig{
			Frequency: 400 * machine.KHz,
			SDA:       machine.GP4,
			SCL:       machine.GP5,
		})
		oled := ssd1306.NewI2C(machine.I2C0)
		oled.Configure(ssd1306.Config{
			Width:   cmd.OLEDWidth,
			Height:  cmd.OLEDHeight,
			Address: 0x3C,
		})
		oled.ClearDisplay()
		return raster.NewCanvas(oled), eyes.Config{ScreenWidth: cmd.OLEDWidth, ScreenHeight: cmd.OLEDHeight, FPS: eyes.DefaultFPS}
	}
}
