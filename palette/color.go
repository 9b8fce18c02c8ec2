package palette

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"blockart/okcolor"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xFFFF
}

// Scale multiplies every channel by f and rounds to the nearest integer.
func (c Color) Scale(f float64) Color {
	return Color{
		R: scaleChannel(c.R, f),
		G: scaleChannel(c.G, f),
		B: scaleChannel(c.B, f),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func scaleChannel(v uint8, f float64) uint8 {
	return uint8(max(0, min(255, math.Round(float64(v)*f))))
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Metric returns the perceptual dissimilarity of two colors. It must be
// symmetric and zero for identical colors.
type Metric func(a, b Color) float64

// CIEDE2000 is the CIE 2000 color difference computed in CIE Lab (D65).
func CIEDE2000(a, b Color) float64 {
	if a == b {
		return 0
	}
	return a.toColorful().DistanceCIEDE2000(b.toColorful())
}

// OKLab is the Euclidean distance in the OKLab space.
func OKLab(a, b Color) float64 {
	return okcolor.Distance(okcolor.FromRGB8(a.R, a.G, a.B), okcolor.FromRGB8(b.R, b.G, b.B))
}

var metrics = map[string]Metric{
	"ciede2000": CIEDE2000,
	"oklab":     OKLab,
}

// MetricNames lists the names accepted by LookupMetric.
func MetricNames() []string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func LookupMetric(name string) (Metric, error) {
	m, ok := metrics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown color metric %q, expected one of %s", name, strings.Join(MetricNames(), ", "))
	}
	return m, nil
}
