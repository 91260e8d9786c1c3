// Command red is a small terminal text editor with syntax highlighting,
// incremental search and a mark-based selection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hibiken/red/editor"
	"github.com/hibiken/red/internal/tty"
)

var version = "dev"

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-Space = mark"

var (
	stdinfd  = int(os.Stdin.Fd())
	stdoutfd = int(os.Stdout.Fd())
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}
	if err := run(cfg); err != nil {
		die(err)
	}
}

func run(cfg *Config) error {
	if !term.IsTerminal(stdinfd) || !term.IsTerminal(stdoutfd) {
		return errors.New("red must be run in a terminal")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	origTermios, err := tty.EnableRawMode(stdinfd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer tty.Restore(stdinfd, origTermios)

	rows, cols, err := tty.WindowSize(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	resize, stop := tty.NotifyResize()
	defer stop()

	e := editor.New(tty.NewReader(os.Stdin), os.Stdout, editor.Options{
		TabStop:         cfg.TabStop,
		Logger:          logger,
		SystemClipboard: cfg.SystemClipboard,
		Resize:          resize,
		WindowSize: func() (int, int, error) {
			return tty.WindowSize(os.Stdin, os.Stdout)
		},
		Version: version,
	})
	e.SetWindowSize(rows, cols)
	logger.Info("starting",
		zap.String("version", version),
		zap.Int("rows", rows),
		zap.Int("cols", cols))

	if cfg.Filename != "" {
		err := e.OpenFile(cfg.Filename)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	e.SetStatusMessage(helpMessage)
	return e.Run()
}

func die(err error) {
	os.Stdout.WriteString("\x1b[2J") // clear the screen
	os.Stdout.WriteString("\x1b[H")  // reposition the cursor
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
