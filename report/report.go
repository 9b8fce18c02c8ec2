// Package report turns quantization choices into placement instructions
// and a materials list.
package report

import (
	"fmt"
	"io"
	"strings"

	"blockart/palette"
	"blockart/quantize"
)

const (
	ReturnMarker   = "return to bottom"
	FinishedMarker = "finished!"
)

type Material struct {
	Name  string
	Count int
}

type Report struct {
	// Instructions holds one candidate name per placed pixel, column by
	// column, with a marker after every column.
	Instructions []string
	// Materials holds the non-zero buckets in bucket order.
	Materials []Material
}

// Build walks the choices column-major (x outer, y inner), which is not the
// order they were produced in.
func Build(ch *quantize.Choices, p *palette.Palette) *Report {
	counts := make([]int, p.Buckets())
	rep := &Report{
		Instructions: make([]string, 0, len(ch.Index)+ch.Width),
	}

	for x := range ch.Width {
		for y := range ch.Height {
			idx := ch.At(x, y)
			if idx == quantize.Skipped {
				continue
			}
			rep.Instructions = append(rep.Instructions, p.Candidates[idx].Name)
			counts[p.Bucket(idx)]++
		}
		if x != ch.Width-1 {
			rep.Instructions = append(rep.Instructions, ReturnMarker)
		} else {
			rep.Instructions = append(rep.Instructions, FinishedMarker)
		}
	}

	for bucket, n := range counts {
		if n == 0 {
			continue
		}
		rep.Materials = append(rep.Materials, Material{Name: p.MaterialName(bucket), Count: n})
	}

	return rep
}

// Total is the number of placed pixels.
func (r *Report) Total() int {
	var n int
	for _, m := range r.Materials {
		n += m.Count
	}
	return n
}

// WriteInstructions writes one instruction per line. The final marker is
// not followed by a newline.
func (r *Report) WriteInstructions(w io.Writer) error {
	for i, line := range r.Instructions {
		if i == len(r.Instructions)-1 {
			_, err := io.WriteString(w, line)
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteMaterials writes "<count>x <name>" lines separated by newlines.
func (r *Report) WriteMaterials(w io.Writer) error {
	lines := make([]string, len(r.Materials))
	for i, m := range r.Materials {
		lines[i] = fmt.Sprintf("%dx %s", m.Count, m.Name)
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
