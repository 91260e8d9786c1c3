package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/hibiken/red/buffer"
)

// Config holds the command-line settings of the editor.
type Config struct {
	TabStop         int    // Number of columns a tab advances to.
	LogPath         string // Where to write logs. Empty disables logging.
	Debug           bool   // Log at debug level.
	SystemClipboard bool   // Share copy and paste with the system clipboard.
	ShowVersion     bool   // Print the version and exit.
	Filename        string // File to open, if any.
}

// parseConfig parses command-line arguments, not including the program name.
func parseConfig(args []string, output io.Writer) (*Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("red", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: red [flags] [file]\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.TabStop, "tabstop", buffer.DefaultTabStop, "Number of columns a tab advances to")
	fs.StringVar(&cfg.LogPath, "log", "", "Write logs to this file")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&cfg.SystemClipboard, "system-clipboard", false, "Share copy and paste with the system clipboard")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.TabStop < 1 {
		return nil, fmt.Errorf("invalid -tabstop %d: must be at least 1", cfg.TabStop)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Filename = fs.Arg(0)
	default:
		fs.Usage()
		return nil, errors.New("too many arguments")
	}
	return &cfg, nil
}
