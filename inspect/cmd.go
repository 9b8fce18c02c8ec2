// Package inspect reports which blocks an image would mostly be built
// from, to help trimming the mask.
package inspect

import (
	"fmt"
	"image"
	"log/slog"

	"blockart/convert"
	"blockart/palette"
	"blockart/raster"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	File   string `arg:"" help:"Image to inspect"`
	Colors int    `short:"n" help:"Number of representative colors" default:"8"`
	Method string `help:"How representative colors are found" enum:"dominant,kmeans" default:"dominant"`
	convert.PaletteFlags
}

type Match struct {
	Swatch
	Candidate palette.Candidate
	Distance  float64
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Colors < 1 {
		return fmt.Errorf("%w: invalid number of colors: %d", convert.ErrConfig, c.Colors)
	}
	return nil
}

// Matches extracts representative colors of img and resolves each of them
// against the palette.
func (c *CLICmd) Matches(img image.Image) ([]Match, error) {
	pal, metric, err := c.PaletteFlags.Load()
	if err != nil {
		return nil, err
	}
	resolver, err := palette.NewResolver(pal, metric)
	if err != nil {
		return nil, err
	}

	var swatches []Swatch
	switch c.Method {
	case "kmeans":
		if swatches, err = KMeans(img, c.Colors); err != nil {
			return nil, err
		}
	default:
		swatches = Dominant(img, c.Colors)
	}

	res := make([]Match, 0, len(swatches))
	for _, s := range swatches {
		col, idx := resolver.Resolve(s.Color)
		res = append(res, Match{
			Swatch:    s,
			Candidate: pal.Candidates[idx],
			Distance:  metric(s.Color, col),
		})
	}
	return res, nil
}

func (c *CLICmd) Run() error {
	logger := slog.Default().With("file", c.File)

	img, _, err := raster.LoadImage(c.File)
	if err != nil {
		return err
	}

	matches, err := c.Matches(img)
	if err != nil {
		return err
	}

	for _, m := range matches {
		logger.Info("color", "rgb", m.Color.String(), "share", fmt.Sprintf("%.1f%%", m.Weight*100),
			"block", m.Candidate.Name, "distance", fmt.Sprintf("%.2f", m.Distance))
	}
	return nil
}
