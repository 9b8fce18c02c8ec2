// Package quantize maps every pixel of a raster onto its nearest palette
// candidate, optionally diffusing the quantization error Floyd-Steinberg
// style.
package quantize

import (
	"math"

	"blockart/palette"
	"blockart/raster"
)

// Skipped marks a transparent pixel in Choices.
const Skipped = -1

// Floyd-Steinberg diffusion weights, in sixteenths
const (
	fsScale    = 16
	wRight     = 7
	wDownLeft  = 3
	wDown      = 5
	wDownRight = 1
)

type Resolver interface {
	Resolve(c palette.Color) (palette.Color, int)
}

type Options struct {
	Dither bool
}

// Choices holds the chosen candidate index of every pixel, row-major, at
// y*Width+x. Transparent pixels hold Skipped.
type Choices struct {
	Width  int
	Height int
	Index  []int
}

func (c *Choices) At(x, y int) int {
	return c.Index[y*c.Width+x]
}

// Quantize recolors r in place, scanning rows top to bottom and each row
// left to right. Error is only pushed to pixels the scan has not reached.
func Quantize(r *raster.Raster, res Resolver, opts Options) *Choices {
	choices := &Choices{
		Width:  r.Width,
		Height: r.Height,
		Index:  make([]int, r.Len()),
	}
	lastX, lastY := r.Width-1, r.Height-1

	for y := range r.Height {
		for x := range r.Width {
			off := r.Offset(x, y)
			if r.Transparent(off) {
				choices.Index[y*r.Width+x] = Skipped
				continue
			}

			old := palette.Color{R: r.Pix[off], G: r.Pix[off+1], B: r.Pix[off+2]}
			c, idx := res.Resolve(old)
			choices.Index[y*r.Width+x] = idx
			r.Pix[off] = c.R
			r.Pix[off+1] = c.G
			r.Pix[off+2] = c.B

			if !opts.Dither {
				continue
			}

			qe := [3]int{
				int(old.R) - int(c.R),
				int(old.G) - int(c.G),
				int(old.B) - int(c.B),
			}
			if x != lastX {
				diffuse(r, x+1, y, qe, wRight)
			}
			if x != 0 && y != lastY {
				diffuse(r, x-1, y+1, qe, wDownLeft)
			}
			if y != lastY {
				diffuse(r, x, y+1, qe, wDown)
			}
			if x != lastX && y != lastY {
				diffuse(r, x+1, y+1, qe, wDownRight)
			}
		}
	}

	return choices
}

// diffuse adds weight/16 of qe to the pixel at (x, y), saturating at both
// ends of the channel range. Transparent pixels never receive error.
func diffuse(r *raster.Raster, x, y int, qe [3]int, weight int) {
	off := r.Offset(x, y)
	if r.Transparent(off) {
		return
	}

	for ch, e := range qe {
		v := int(r.Pix[off+ch]) + int(math.Round(float64(e*weight)/fsScale))
		r.Pix[off+ch] = uint8(max(0, min(255, v)))
	}
}
