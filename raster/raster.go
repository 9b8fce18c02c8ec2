// Package raster holds decoded images as flat, channel-interleaved 8-bit
// buffers.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrDecode = errors.New("could not decode image")

const (
	RGB  = 3
	RGBA = 4
)

// Raster is a row-major pixel buffer. The pixel at (x, y) starts at
// Pix[(y*Width+x)*Channels]; with RGBA channels the fourth byte is a
// non-premultiplied alpha.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

func New(width, height, channels int, pix []uint8) (*Raster, error) {
	if channels != RGB && channels != RGBA {
		return nil, fmt.Errorf("%w: unsupported bytes per pixel: %d", ErrDecode, channels)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrDecode, width, height)
	}
	if len(pix) != width*height*channels {
		return nil, fmt.Errorf("%w: buffer holds %d bytes, %dx%dx%d needs %d", ErrDecode, len(pix),
			width, height, channels, width*height*channels)
	}

	return &Raster{Width: width, Height: height, Channels: channels, Pix: pix}, nil
}

func (r *Raster) Offset(x, y int) int {
	return (y*r.Width + x) * r.Channels
}

// Transparent reports whether the pixel at offset is fully transparent.
func (r *Raster) Transparent(off int) bool {
	return r.Channels == RGBA && r.Pix[off+3] == 0
}

// Len is the number of pixels.
func (r *Raster) Len() int {
	return r.Width * r.Height
}

// FromImage copies img into a raster. Images with any non-opaque pixel
// get four channels, the others three.
func FromImage(img image.Image) *Raster {
	b := img.Bounds()
	channels := RGB
	if hasAlpha(img) {
		channels = RGBA
	}

	r := &Raster{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pix:      make([]uint8, b.Dx()*b.Dy()*channels),
	}

	if src, ok := img.(*image.NRGBA); ok && channels == RGBA {
		rowLen := r.Width * RGBA
		for y := range r.Height {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(r.Pix[y*rowLen:], src.Pix[i:i+rowLen])
		}
		return r
	}

	off := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r.Pix[off] = c.R
			r.Pix[off+1] = c.G
			r.Pix[off+2] = c.B
			if channels == RGBA {
				r.Pix[off+3] = c.A
			}
			off += channels
		}
	}
	return r
}

// hasAlpha reports whether any pixel of img is not fully opaque. The png
// encoder drops the alpha channel of opaque images, so decoding its output
// gives the same channel count again.
func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return true
}

// Image wraps the raster buffer without copying it.
func (r *Raster) Image() image.Image {
	rect := image.Rect(0, 0, r.Width, r.Height)
	if r.Channels == RGBA {
		return &image.NRGBA{Pix: r.Pix, Stride: r.Width * RGBA, Rect: rect}
	}

	img := image.NewRGBA(rect)
	for i, j := 0, 0; i < len(r.Pix); i, j = i+RGB, j+RGBA {
		img.Pix[j] = r.Pix[i]
		img.Pix[j+1] = r.Pix[i+1]
		img.Pix[j+2] = r.Pix[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img
}

// DecodeImage reads any registered image format.
func DecodeImage(rd io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(rd)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, format, nil
}

// Decode reads any registered image format and returns the raster along
// with the format name.
func Decode(rd io.Reader) (*Raster, string, error) {
	img, format, err := DecodeImage(rd)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

func LoadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: unable to open %q: %w", ErrDecode, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "name", path, "error", closeErr)
		}
	}()

	return DecodeImage(f)
}

func Load(path string) (*Raster, string, error) {
	img, format, err := LoadImage(path)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}
