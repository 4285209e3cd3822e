package config

import (
	"flag"
	"fmt"

	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/log"
)

// Display front-ends
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Default values for configuration
const (
	DefaultDisplay       = DisplayTerminal
	DefaultViewportWidth = 1024
	DefaultLogLevel      = "info"
)

// Config holds the application configuration
type Config struct {
	Display       string
	ViewportWidth int
	Mobile        bool
	Mute          bool
	LogFile       string
	LogLevel      log.LogLevel
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("neonpong", flag.ContinueOnError)

	display := fs.String("display", DefaultDisplay, "front-end: terminal or window")
	viewport := fs.Int("viewport-width", DefaultViewportWidth, "host viewport width in pixels (<=600 selects the mobile profile)")
	mobile := fs.Bool("mobile", false, "force the mobile speed profile")
	mute := fs.Bool("mute", false, "disable sound effects")
	logFile := fs.String("log-file", "", "write logs to this file")
	logLevel := fs.String("log-level", DefaultLogLevel, "log level: error, warn, info, debug, trace")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Validate display
	if *display != DisplayTerminal && *display != DisplayWindow {
		return nil, fmt.Errorf("display must be %q or %q, got %q", DisplayTerminal, DisplayWindow, *display)
	}

	// Validate viewport
	if *viewport < 1 {
		return nil, fmt.Errorf("viewport width must be at least 1, got %d", *viewport)
	}

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Display:       *display,
		ViewportWidth: *viewport,
		Mobile:        *mobile,
		Mute:          *mute,
		LogFile:       *logFile,
		LogLevel:      level,
	}

	return cfg, nil
}

// Profile resolves the speed profile once, at session creation.
func (c *Config) Profile() game.Profile {
	if c.Mobile {
		return game.MobileProfile
	}
	return game.ProfileForViewport(c.ViewportWidth)
}
