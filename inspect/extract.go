package inspect

import (
	"fmt"
	"image"
	"math"
	"slices"

	"blockart/palette"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// maxSamples bounds the number of pixels fed to k-means.
const maxSamples = 12000

// Swatch is a representative color of an image and the share of the image
// it stands for.
type Swatch struct {
	Color  palette.Color
	Weight float64
}

func Dominant(img image.Image, n int) []Swatch {
	if n <= 0 {
		return nil
	}

	var res []Swatch
	for _, c := range dominantcolor.FindWeight(img, n) {
		res = append(res, Swatch{
			Color:  palette.Color{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B},
			Weight: c.Weight,
		})
	}
	return res
}

func KMeans(img image.Image, n int) ([]Swatch, error) {
	if n <= 0 {
		return nil, nil
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	step := 1
	if width*height > maxSamples {
		step = int(math.Sqrt(float64(width*height)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(width*height, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			// undo alpha premultiplication
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / float64(a16),
				float64(g16) / float64(a16),
				float64(b16) / float64(a16),
			})
		}
	}
	if len(dataset) == 0 {
		return nil, nil
	}

	cc, err := kmeans.New().Partition(dataset, min(n, len(dataset)))
	if err != nil {
		return nil, fmt.Errorf("could not cluster colors: %w", err)
	}

	// most populated clusters first
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	res := make([]Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		res = append(res, Swatch{
			Color: palette.Color{
				R: unit8(c.Center[0]),
				G: unit8(c.Center[1]),
				B: unit8(c.Center[2]),
			},
			Weight: float64(len(c.Observations)) / float64(len(dataset)),
		})
	}
	return res, nil
}

func unit8(v float64) uint8 {
	return uint8(max(0, min(255, math.Round(v*255))))
}
