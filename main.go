package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hnnsb/weiss/editor"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
)

// newLogger returns a development logger writing to path, or a no-op logger
// when debugging is off. The screen belongs to the editor, so nothing is
// ever logged to the terminal.
func newLogger(debug bool, path string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating debug log %s: %w", path, err)
	}
	return logger, nil
}

// die restores the terminal, prints the error and exits
func die(terminal *editor.Terminal, logger *zap.Logger, err error) {
	terminal.ClearScreen()
	terminal.Restore()
	logger.Error("fatal", zap.Error(err))
	_ = logger.Sync()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	cfg := editor.DefaultConfig()
	flag.IntVar(&cfg.TabStop, "tabstop", cfg.TabStop, "number of columns a tab expands to")
	flag.IntVar(&cfg.QuitTimes, "quit-times", cfg.QuitTimes, "quit presses needed to discard unsaved changes")
	flag.IntVar(&cfg.ScrollMargin, "margin", cfg.ScrollMargin, "rows kept between the cursor and the window edge")
	debugFlag := flag.Bool("debug", false, "flag to enable debug logging")
	logPath := flag.String("log", "weiss.log", "debug log file")
	flag.Parse()

	logger, err := newLogger(*debugFlag, *logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	terminal := editor.NewTerminal(os.Stdin, os.Stdout)
	if err := terminal.EnableRawMode(); err != nil {
		die(terminal, logger, err)
	}
	defer func() {
		if r := recover(); r != nil {
			terminal.ClearScreen()
			terminal.Restore()
			logger.Error("panic", zap.Any("panic", r), zap.Stack("stack"))
			_ = logger.Sync()
			panic(r)
		}
	}()

	e := editor.NewEditor(cfg, terminal, terminal,
		editor.WithLogger(logger),
		editor.WithColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile()))

	rows, cols, err := terminal.Size()
	if err != nil {
		die(terminal, logger, err)
	}
	e.Resize(rows, cols)

	if flag.NArg() >= 1 {
		if err := e.Open(flag.Arg(0)); err != nil {
			die(terminal, logger, err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-G = help")

	if err := e.Run(); !errors.Is(err, editor.ErrQuit) {
		die(terminal, logger, err)
	}

	terminal.ClearScreen()
	terminal.Restore()
	_ = logger.Sync()
}
