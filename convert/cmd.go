package convert

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"blockart/fileop"
	"blockart/palette"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	File         string `arg:"" optional:"" help:"Image to convert"`
	Output       string `arg:"" optional:"" help:"Where to write the converted image (png, bmp or tiff)" default:"output.png"`
	Dither       bool   `short:"d" help:"Use dithering"`
	Instructions string `help:"Where to write the placement instructions" default:"instructions.txt"`
	Materials    string `help:"Where to write the materials list" default:"materials.txt"`
	ExportPal    string `help:"Also write the built palette as a RIFF .pal file"`
	PaletteFlags
	ResizeFlags

	pal    *palette.Palette `kong:"-"`
	metric palette.Metric   `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.File == "" {
		return fmt.Errorf("%w: filename not provided", ErrConfig)
	}
	if err := c.ResizeFlags.Validate(); err != nil {
		return err
	}

	var err error
	c.pal, c.metric, err = c.PaletteFlags.Load()
	return err
}

func (c *CLICmd) Run() error {
	if c.pal == nil {
		var err error
		if c.pal, c.metric, err = c.PaletteFlags.Load(); err != nil {
			return err
		}
	}

	logger := slog.Default().With("file", c.File)

	if c.ExportPal != "" {
		if err := exportPalette(c.ExportPal, c.pal); err != nil {
			return err
		}
		logger.Info("exported palette", "path", c.ExportPal, "colors", c.pal.Len())
	}

	pipeline := &Pipeline{
		Palette: c.pal,
		Metric:  c.metric,
		Dither:  c.Dither,
		Resize:  c.ResizeFlags,
	}
	job := Job{
		Input:        c.File,
		Output:       c.Output,
		Instructions: c.Instructions,
		Materials:    c.Materials,
	}
	if _, err := pipeline.Run(logger, job); err != nil {
		return fmt.Errorf("could not convert %q: %w", filepath.Base(c.File), err)
	}
	return nil
}

func exportPalette(path string, p *palette.Palette) error {
	return fileop.WriteFile(path, func(w io.Writer) error {
		_, err := palette.WriteRIFF(w, p)
		return err
	})
}
