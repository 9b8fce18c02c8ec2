package inspect

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"blockart/convert"
)

func twoTone() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			c := color.NRGBA{R: 200, G: 60, B: 40, A: 255}
			if y >= 6 {
				c = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newCmd(t *testing.T, method string) *CLICmd {
	t.Helper()
	blocks := filepath.Join(t.TempDir(), "blockdata.csv")
	csv := "red,green,blue,name\n233,70,47,Brick\n127,178,56,Grass\n255,255,255,Snow\n"
	if err := os.WriteFile(blocks, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	return &CLICmd{
		Colors: 2,
		Method: method,
		PaletteFlags: convert.PaletteFlags{
			Blocks: blocks,
			Metric: "ciede2000",
		},
	}
}

func TestMatches(t *testing.T) {
	for _, method := range []string{"dominant", "kmeans"} {
		c := newCmd(t, method)
		matches, err := c.Matches(twoTone())
		if err != nil {
			t.Fatalf("%s: %v", method, err)
		}
		if len(matches) == 0 {
			t.Fatalf("%s: expected matches", method)
		}

		for _, m := range matches {
			if m.Candidate.Name != "Brick LEVEL" && m.Candidate.Name != "Snow LEVEL" {
				t.Errorf("%s: unexpected block %q for %v", method, m.Candidate.Name, m.Color)
			}
			if m.Distance < 0 {
				t.Errorf("%s: negative distance %f", method, m.Distance)
			}
		}
		if method == "kmeans" && !strings.HasPrefix(matches[0].Candidate.Name, "Brick") {
			t.Errorf("%s: expected the larger area first, got %q", method, matches[0].Candidate.Name)
		}
	}
}

func TestKMeansWeights(t *testing.T) {
	swatches, err := KMeans(twoTone(), 2)
	if err != nil {
		t.Fatal(err)
	}

	var sum float64
	for _, s := range swatches {
		sum += s.Weight
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("expected weights to sum to 1, got %f", sum)
	}
}

func TestKMeansIgnoresTransparent(t *testing.T) {
	swatches, err := KMeans(image.NewNRGBA(image.Rect(0, 0, 4, 4)), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(swatches) != 0 {
		t.Fatalf("expected no swatches, got %v", swatches)
	}
}
