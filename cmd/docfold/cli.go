package main

import (
	"io"
	"log/slog"
	"os"
)

// Global carries process wide dependencies into commands
type Global struct {
	Stdout io.Writer
}

// CLI definition & global flags
type CLI struct {
	Config  string `short:"c" help:"Configuration file path" type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Run    RunCmd    `cmd:"" help:"Run documentation passes over a Go project or a crate document"`
	Passes PassesCmd `cmd:"" help:"List registered passes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(newLogger(level))
	return nil
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
