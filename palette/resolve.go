package palette

import "math"

// Resolver finds the nearest candidate of a palette by brute force.
// It memoizes results and is not safe for concurrent use.
type Resolver struct {
	candidates []Candidate
	metric     Metric
	cache      map[Color]int
}

func NewResolver(p *Palette, metric Metric) (*Resolver, error) {
	if p == nil || p.Len() == 0 {
		return nil, ErrEmpty
	}
	if metric == nil {
		metric = CIEDE2000
	}

	return &Resolver{
		candidates: p.Candidates,
		metric:     metric,
		cache:      make(map[Color]int),
	}, nil
}

// Resolve returns the closest candidate color and its index. Ties keep the
// lowest index.
func (r *Resolver) Resolve(c Color) (Color, int) {
	if i, ok := r.cache[c]; ok {
		return r.candidates[i].Color, i
	}

	ret, best := 0, math.Inf(1)
	for i, cand := range r.candidates {
		d := r.metric(c, cand.Color)
		if d < best {
			ret, best = i, d
		}
	}

	r.cache[c] = ret
	return r.candidates[ret].Color, ret
}
