package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"blockart/fileop"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats lists the lossless output formats Encode supports.
var Formats = []string{"png", "bmp", "tiff"}

// FormatFromPath picks the output format from the file extension,
// defaulting to png.
func FormatFromPath(path string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "":
		return "png"
	case "tif":
		return "tiff"
	default:
		return ext
	}
}

func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode BMP: %w", err)
		}
	case "tiff":
		if err := tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("could not encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}

// Save encodes the raster to path, in the format its extension names.
func (r *Raster) Save(path string) error {
	format := FormatFromPath(path)
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%w: unsupported output format %q, expected one of %s", fileop.ErrWrite, format,
			strings.Join(Formats, ", "))
	}

	img := r.Image()
	return fileop.WriteFile(path, func(w io.Writer) error {
		return Encode(w, img, format)
	})
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
