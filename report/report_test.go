package report

import (
	"bytes"
	"strings"
	"testing"

	"blockart/palette"
	"blockart/quantize"
)

var materials = []palette.Material{
	{Color: palette.Color{R: 128, G: 128, B: 128}, Name: "Stone"},
	{Color: palette.Color{R: 127, G: 178, B: 56}, Name: "Grass"},
	{Color: palette.Color{R: 255, G: 255, B: 255}, Name: "Snow"},
}

func TestBuildColumnMajor(t *testing.T) {
	p := palette.Build(materials, palette.Options{})
	ch := &quantize.Choices{
		Width:  2,
		Height: 3,
		Index: []int{
			0, 1,
			2, 0,
			0, 2,
		},
	}

	rep := Build(ch, p)

	want := []string{
		"Stone LEVEL", "Snow LEVEL", "Stone LEVEL", ReturnMarker,
		"Grass LEVEL", "Stone LEVEL", "Snow LEVEL", FinishedMarker,
	}
	if strings.Join(rep.Instructions, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, rep.Instructions)
	}

	wantMat := []Material{{"Stone", 3}, {"Grass", 1}, {"Snow", 2}}
	if len(rep.Materials) != len(wantMat) {
		t.Fatalf("expected %v, got %v", wantMat, rep.Materials)
	}
	for i := range wantMat {
		if rep.Materials[i] != wantMat[i] {
			t.Errorf("%d: expected %v, got %v", i, wantMat[i], rep.Materials[i])
		}
	}
	if rep.Total() != 6 {
		t.Fatalf("expected total 6, got %d", rep.Total())
	}
}

func TestBuildStaircaseFoldsVariants(t *testing.T) {
	p := palette.Build(materials, palette.Options{Staircase: true})
	// Stone LEVEL, Stone UP, Stone DOWN, Snow UP
	ch := &quantize.Choices{Width: 4, Height: 1, Index: []int{0, 1, 2, 7}}

	rep := Build(ch, p)

	var buf bytes.Buffer
	if err := rep.WriteMaterials(&buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "3x Stone\n1x Snow"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBuildSkipsTransparent(t *testing.T) {
	p := palette.Build(materials, palette.Options{})
	opaque := &quantize.Choices{Width: 2, Height: 2, Index: []int{0, 0, 0, 0}}
	holey := &quantize.Choices{Width: 2, Height: 2, Index: []int{0, quantize.Skipped, 0, 0}}

	full := Build(opaque, p)
	partial := Build(holey, p)

	if len(full.Instructions)-len(partial.Instructions) != 1 {
		t.Fatalf("expected exactly one line less, got %d vs %d", len(partial.Instructions), len(full.Instructions))
	}
	if partial.Total() != 3 {
		t.Fatalf("expected 3 placed pixels, got %d", partial.Total())
	}
}

func TestWriteInstructions(t *testing.T) {
	p := palette.Build(materials[:1], palette.Options{})
	ch := &quantize.Choices{Width: 2, Height: 1, Index: []int{0, 0}}

	var buf bytes.Buffer
	if err := Build(ch, p).WriteInstructions(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Stone LEVEL\nreturn to bottom\nStone LEVEL\nfinished!"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestEmptyReport(t *testing.T) {
	p := palette.Build(materials, palette.Options{})
	rep := Build(&quantize.Choices{}, p)

	var buf bytes.Buffer
	if err := rep.WriteInstructions(&buf); err != nil {
		t.Fatal(err)
	}
	if err := rep.WriteMaterials(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
