package main

import (
	"fmt"
	"io"
	"os"

	"github.com/diegok/neonpong/internal/app"
	"github.com/diegok/neonpong/internal/config"
	"github.com/diegok/neonpong/internal/log"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	runErr := application.Run()
	closeLog()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// setupLogging routes logs away from the terminal while it is drawn on.
func setupLogging(cfg *config.Config) (func(), error) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case cfg.Display == config.DisplayTerminal:
		out = io.Discard
	}

	log.SetDefaultLogger(log.New(out, "", log.DefaultLoggerFlag, cfg.LogLevel))
	return closeFn, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  neonpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --display <name>        terminal or window (default: terminal)")
	fmt.Fprintln(os.Stderr, "  --viewport-width <px>   Host viewport width; 600 or less plays faster (default: 1024)")
	fmt.Fprintln(os.Stderr, "  --mobile                Force the faster mobile speeds")
	fmt.Fprintln(os.Stderr, "  --mute                  Disable sound effects")
	fmt.Fprintln(os.Stderr, "  --log-file <path>       Append JSON logs to a file")
	fmt.Fprintln(os.Stderr, "  --log-level <level>     error, warn, info, debug or trace (default: info)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  neonpong")
	fmt.Fprintln(os.Stderr, "  neonpong --display window --log-level debug")
	fmt.Fprintln(os.Stderr, "  neonpong --mobile --log-file pong.log")
}
