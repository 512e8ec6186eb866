package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"nifri2/robo-eyes/eyes"
)

type Config struct {
	ScreenWidth  int `env:"EYES_SCREEN_WIDTH" default:"128"`
	ScreenHeight int `env:"EYES_SCREEN_HEIGHT" default:"64"`
	FPS          int `env:"EYES_FPS" default:"50"`

	EyeWidth  int    `env:"EYES_WIDTH" default:"36"`
	EyeHeight int    `env:"EYES_HEIGHT" default:"36"`
	Radius    int    `env:"EYES_RADIUS" default:"8"`
	Space     int    `env:"EYES_SPACE" default:"10"`
	Mood      string `env:"EYES_MOOD" default:"default"`

	AutoBlink      bool          `env:"EYES_AUTOBLINK" default:"true"`
	BlinkInterval  time.Duration `env:"EYES_BLINK_INTERVAL" default:"1s"`
	BlinkVariation time.Duration `env:"EYES_BLINK_VARIATION" default:"4s"`
	Idle           bool          `env:"EYES_IDLE" default:"true"`
	IdleInterval   time.Duration `env:"EYES_IDLE_INTERVAL" default:"1s"`
	IdleVariation  time.Duration `env:"EYES_IDLE_VARIATION" default:"3s"`

	// Script is a file of command lines run once at startup.
	Script string `env:"EYES_SCRIPT"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
	LogFile   string `env:"EYES_LOG_FILE"` // empty discards logs; the terminal belongs to the preview
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Engine returns the engine settings.
func (c *Config) Engine() eyes.Config {
	return eyes.Config{
		ScreenWidth:  c.ScreenWidth,
		ScreenHeight: c.ScreenHeight,
		FPS:          c.FPS,
	}
}

func validate(cfg *Config) error {
	positive := []struct {
		name  string
		value int
	}{
		{"EYES_SCREEN_WIDTH", cfg.ScreenWidth},
		{"EYES_SCREEN_HEIGHT", cfg.ScreenHeight},
		{"EYES_FPS", cfg.FPS},
		{"EYES_WIDTH", cfg.EyeWidth},
		{"EYES_HEIGHT", cfg.EyeHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}
	if cfg.Radius < 0 {
		return fmt.Errorf("EYES_RADIUS must not be negative, got %d", cfg.Radius)
	}
	if cfg.BlinkInterval < 0 || cfg.BlinkVariation < 0 || cfg.IdleInterval < 0 || cfg.IdleVariation < 0 {
		return fmt.Errorf("blink and idle timings must not be negative")
	}

	switch cfg.Mood {
	case "default", "tired", "angry", "happy":
	default:
		return fmt.Errorf("EYES_MOOD must be one of default, tired, angry, happy, got %q", cfg.Mood)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}
