package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"blockart/convert"
	"blockart/palette"
	"blockart/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan    string `help:"Source folder to scan" default:"."`
	Dest    string `help:"Destination folder for converted pictures and their lists. Relative to scan dir if not absolute" default:"blockart"`
	Format  string `help:"Output format of converted images" enum:"png,bmp,tiff" default:"png"`
	Workers int    `help:"Number of images converted at once, 0 for one per CPU" default:"0"`
	Dither  bool   `short:"d" help:"Use dithering"`
	convert.PaletteFlags
	convert.ResizeFlags

	pal    *palette.Palette `kong:"-"`
	metric palette.Metric   `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("%w: invalid scan path %q: %w", convert.ErrConfig, c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if err := c.ResizeFlags.Validate(); err != nil {
		return err
	}

	c.pal, c.metric, err = c.PaletteFlags.Load()
	return err
}

// Jobs lists one conversion per regular file of the scan folder. Outputs
// are named after the source file.
func (c *CLICmd) Jobs() ([]convert.Job, error) {
	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return nil, fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var jobs []convert.Job
	for _, file := range files {
		if !file.Type().IsRegular() {
			continue
		}

		name := file.Name()
		base := strings.TrimSuffix(name, filepath.Ext(name))
		jobs = append(jobs, convert.Job{
			Input:        filepath.Join(c.Scan, name),
			Output:       filepath.Join(c.Dest, base+"."+c.Format),
			Instructions: filepath.Join(c.Dest, base+".instructions.txt"),
			Materials:    filepath.Join(c.Dest, base+".materials.txt"),
		})
	}
	return jobs, nil
}

func (c *CLICmd) Run() error {
	if c.pal == nil {
		var err error
		if c.pal, c.metric, err = c.PaletteFlags.Load(); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	jobs, err := c.Jobs()
	if err != nil {
		return err
	}

	pipeline := &convert.Pipeline{
		Palette: c.pal,
		Metric:  c.metric,
		Dither:  c.Dither,
		Resize:  c.ResizeFlags,
	}

	pool := parallel.Start(c.Workers)
	for _, job := range jobs {
		pool.Do(func() error {
			logger := slog.Default().With("file", job.Input)
			if _, err := pipeline.Run(logger, job); err != nil {
				logger.Error("could not convert image", "error", err)
				return err
			}
			return nil
		})
	}
	stats := pool.Wait()

	slog.Info("stats", "processed", stats.Processed, "errors", stats.Failed, "total", stats.Total())

	if stats.Failed > 0 {
		return fmt.Errorf("error processing %d files", stats.Failed)
	}
	return nil
}
