package main

import (
	"log/slog"
	"os"

	"blockart/batch"
	"blockart/convert"
	"blockart/inspect"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool `short:"v" help:"Log debug messages"`

	Convert convert.CLICmd `cmd:"" default:"withargs" help:"Convert an image into blocks, placement instructions and a materials list"`
	Batch   batch.CLICmd   `cmd:"" help:"Convert every image of a folder"`
	Inspect inspect.CLICmd `cmd:"" help:"Show the blocks the main colors of an image map to"`
}

func (c *cli) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("blockart"),
		kong.Description("Turn pictures into block art using a fixed set of block colors."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, "blockart.json", "~/.config/blockart.json"),
	)

	if err := kctx.Run(); err != nil {
		slog.Error("failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
