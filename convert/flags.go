package convert

import (
	"errors"
	"fmt"

	"blockart/palette"
)

var ErrConfig = errors.New("invalid configuration")

// PaletteFlags selects and shapes the candidate palette. It is shared by
// every command that resolves colors.
type PaletteFlags struct {
	Blocks    string `help:"Palette table: CSV with red,green,blue,name columns, or a RIFF .pal file" default:"blockdata.csv" group:"palette"`
	Staircase bool   `short:"s" help:"Use the staircase method: LEVEL, UP and DOWN shades of every block. Usually much better results, but harder to build" group:"palette"`
	UseMask   bool   `short:"u" help:"Only use the blocks listed in the mask file" group:"palette"`
	Mask      string `help:"Mask file, one block name per line" default:"mask.txt" group:"palette"`
	Metric    string `help:"Color difference used to pick blocks" enum:"ciede2000,oklab" default:"ciede2000" group:"palette"`
}

// Load reads the palette table and the mask, then builds the candidates.
func (f *PaletteFlags) Load() (*palette.Palette, palette.Metric, error) {
	metric, err := palette.LookupMetric(f.Metric)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	materials, err := palette.LoadMaterials(f.Blocks)
	if err != nil {
		return nil, nil, err
	}

	opts := palette.Options{Staircase: f.Staircase}
	if f.UseMask {
		if opts.Mask, err = palette.LoadMask(f.Mask); err != nil {
			return nil, nil, err
		}
	}

	pal := palette.Build(materials, opts)
	if pal.Len() == 0 {
		return nil, nil, fmt.Errorf("%w: %w: %d blocks in %q, mask used: %t", ErrConfig, palette.ErrEmpty,
			len(materials), f.Blocks, f.UseMask)
	}

	return pal, metric, nil
}

type ResizeFlags struct {
	Width  int  `help:"Resize to this width before converting (128 per map)" group:"resize"`
	Height int  `help:"Resize to this height before converting (128 per map)" group:"resize"`
	Crop   bool `help:"Crop to keep the requested aspect ratio instead of fitting inside it" group:"resize"`
}

func (f *ResizeFlags) Validate() error {
	switch {
	case f.Width < 0:
		return fmt.Errorf("%w: invalid resize width: %d", ErrConfig, f.Width)
	case f.Height < 0:
		return fmt.Errorf("%w: invalid resize height: %d", ErrConfig, f.Height)
	}
	return nil
}
