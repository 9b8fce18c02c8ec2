// Package resize scales images before they are quantized.
package resize

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// Fit scales img to width x height. A zero dimension keeps the source
// size on that axis when the other one is zero as well, and follows the
// source aspect ratio otherwise. When both are given, crop trims the source
// to the destination aspect ratio; without crop the image is shrunk to fit
// inside the box.
func Fit(logger *slog.Logger, img image.Image, width, height int, crop bool) (image.Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid resize dimensions %dx%d", width, height)
	}

	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())
	if srcWidth == 0 || srcHeight == 0 {
		return img, nil
	}
	srcAR := srcWidth / srcHeight

	destWidth := float64(width)
	destHeight := float64(height)
	switch {
	case width == 0 && height == 0:
		return img, nil
	case width == 0:
		destWidth = math.Max(1, math.Round(destHeight*srcAR))
	case height == 0:
		destHeight = math.Max(1, math.Round(destWidth/srcAR))
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return img, nil
	}

	destAR := destWidth / destHeight
	if crop {
		if srcAR < destAR {
			dh := int(math.Round((srcHeight - srcWidth/destAR) / 2))
			srcBounds.Min.Y += dh
			srcBounds.Max.Y -= dh
		} else if srcAR > destAR {
			dw := int(math.Round((srcWidth - srcHeight*destAR) / 2))
			srcBounds.Min.X += dw
			srcBounds.Max.X -= dw
		}
	} else {
		if srcAR < destAR {
			destWidth = math.Max(1, math.Round(destHeight*srcAR))
		} else if srcAR > destAR {
			destHeight = math.Max(1, math.Round(destWidth/srcAR))
		}
	}

	destBounds := image.Rect(0, 0, int(destWidth), int(destHeight))
	logger.Info("resizing", "width", destBounds.Dx(), "height", destBounds.Dy())

	dest := image.NewNRGBA(destBounds)
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Src, nil)

	return dest, nil
}
