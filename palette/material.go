package palette

import (
	"errors"
	"image/color"
	"strings"
)

var ErrEmpty = errors.New("palette is empty")

// Material is one row of the palette source table.
type Material struct {
	Color
	Name string
}

// Variant is the staircase shade of a candidate.
type Variant int

const (
	Level Variant = iota
	Up
	Down
)

const (
	levelFactor = 0.86
	downFactor  = 0.71
)

func (v Variant) String() string {
	switch v {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return "LEVEL"
	}
}

func (v Variant) apply(c Color) Color {
	switch v {
	case Up:
		return c
	case Down:
		return c.Scale(downFactor)
	default:
		return c.Scale(levelFactor)
	}
}

var staircaseVariants = []Variant{Level, Up, Down}

// Candidate is a searchable palette entry. Index is its position in the
// palette and never changes once the palette is built.
type Candidate struct {
	Color
	Name    string
	Index   int
	Variant Variant
}

// Mask is the set of material names allowed into a palette. A nil mask
// allows everything.
type Mask map[string]struct{}

func NewMask(names ...string) Mask {
	m := make(Mask, len(names))
	for _, name := range names {
		m[name] = struct{}{}
	}
	return m
}

func (m Mask) Allows(name string) bool {
	if m == nil {
		return true
	}
	_, ok := m[name]
	return ok
}

type Options struct {
	// Staircase expands every material into LEVEL, UP and DOWN candidates.
	Staircase bool
	// Mask, when not nil, drops materials whose name it does not contain.
	Mask Mask
}

// Palette is the ordered candidate set. In staircase mode every three
// consecutive candidates belong to one material.
type Palette struct {
	Candidates []Candidate
	Staircase  bool
}

// Build expands materials into candidates, in source order.
func Build(materials []Material, opts Options) *Palette {
	variants := staircaseVariants
	if !opts.Staircase {
		variants = variants[:1]
	}

	p := &Palette{
		Candidates: make([]Candidate, 0, len(materials)*len(variants)),
		Staircase:  opts.Staircase,
	}
	for _, m := range materials {
		if !opts.Mask.Allows(m.Name) {
			continue
		}
		for _, v := range variants {
			p.Candidates = append(p.Candidates, Candidate{
				Color:   v.apply(m.Color),
				Name:    m.Name + " " + v.String(),
				Index:   len(p.Candidates),
				Variant: v,
			})
		}
	}

	return p
}

func (p *Palette) Len() int {
	return len(p.Candidates)
}

func (p *Palette) groupSize() int {
	if p.Staircase {
		return len(staircaseVariants)
	}
	return 1
}

// Bucket folds a candidate index onto its material.
func (p *Palette) Bucket(index int) int {
	return index / p.groupSize()
}

// Buckets is the number of distinct materials in the palette.
func (p *Palette) Buckets() int {
	return len(p.Candidates) / p.groupSize()
}

// MaterialName is the display name of a bucket: the name of its first
// candidate without the LEVEL suffix.
func (p *Palette) MaterialName(bucket int) string {
	return strings.TrimSuffix(p.Candidates[bucket*p.groupSize()].Name, " "+Level.String())
}

// Colors returns the candidate colors in index order.
func (p *Palette) Colors() color.Palette {
	pal := make(color.Palette, len(p.Candidates))
	for i, c := range p.Candidates {
		pal[i] = c.Color
	}
	return pal
}
