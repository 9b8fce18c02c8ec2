package okcolor

import (
	"image/color"
	"math"
	"testing"
)

func TestFromRGB8Extremes(t *testing.T) {
	black := FromRGB8(0, 0, 0)
	if math.Abs(black.L) > 1e-9 || math.Abs(black.A) > 1e-9 || math.Abs(black.B) > 1e-9 {
		t.Fatalf("expected black at origin, got %+v", black)
	}

	white := FromRGB8(255, 255, 255)
	if math.Abs(white.L-1) > 1e-4 {
		t.Fatalf("expected white lightness 1, got %f", white.L)
	}
	if math.Abs(white.A) > 1e-4 || math.Abs(white.B) > 1e-4 {
		t.Fatalf("expected white to be achromatic, got %+v", white)
	}
}

func TestFromColorIgnoresAlpha(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 200, B: 30, A: 255})
	want := FromRGB8(10, 200, 30)
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDistance(t *testing.T) {
	a := FromRGB8(200, 30, 40)
	b := FromRGB8(20, 90, 220)

	if d := Distance(a, a); d != 0 {
		t.Fatalf("expected zero self distance, got %f", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Fatalf("distance not symmetric: %f != %f", Distance(a, b), Distance(b, a))
	}

	near := FromRGB8(205, 30, 40)
	if Distance(a, near) >= Distance(a, b) {
		t.Fatalf("expected a near red to be closer than a blue")
	}
}
