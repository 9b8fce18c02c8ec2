package convert

import (
	"io"
	"log/slog"

	"blockart/fileop"
	"blockart/palette"
	"blockart/quantize"
	"blockart/raster"
	"blockart/report"
	"blockart/resize"
)

// Job names the input image and the three outputs of one conversion.
type Job struct {
	Input        string
	Output       string
	Instructions string
	Materials    string
}

// Pipeline converts images against one palette. The palette is only read,
// so a pipeline may run jobs concurrently.
type Pipeline struct {
	Palette *palette.Palette
	Metric  palette.Metric
	Dither  bool
	Resize  ResizeFlags
}

// Run decodes the input, quantizes it and writes the instructions, the
// materials list and the image, in that order. Outputs written before a
// failure are kept.
func (p *Pipeline) Run(logger *slog.Logger, job Job) (*report.Report, error) {
	resolver, err := palette.NewResolver(p.Palette, p.Metric)
	if err != nil {
		return nil, err
	}

	img, format, err := raster.LoadImage(job.Input)
	if err != nil {
		return nil, err
	}
	if img, err = resize.Fit(logger, img, p.Resize.Width, p.Resize.Height, p.Resize.Crop); err != nil {
		return nil, err
	}

	r := raster.FromImage(img)
	logger.Debug("decoded", "format", format, "width", r.Width, "height", r.Height, "bytes_per_pixel", r.Channels)

	logger.Info("applying palette", "colors", p.Palette.Len(), "dither", p.Dither)
	choices := quantize.Quantize(r, resolver, quantize.Options{Dither: p.Dither})
	rep := report.Build(choices, p.Palette)

	if err := fileop.WriteFile(job.Instructions, func(w io.Writer) error {
		return rep.WriteInstructions(w)
	}); err != nil {
		return rep, err
	}
	if err := fileop.WriteFile(job.Materials, func(w io.Writer) error {
		return rep.WriteMaterials(w)
	}); err != nil {
		return rep, err
	}
	if err := r.Save(job.Output); err != nil {
		return rep, err
	}

	logger.Info("converted", "output", job.Output, "blocks", rep.Total(), "materials", len(rep.Materials))
	return rep, nil
}
