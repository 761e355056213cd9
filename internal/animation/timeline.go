package animation

import "gonum.org/v1/gonum/floats"

// Timeline returns frames evenly spaced times from start to end inclusive.
func Timeline(start, end float64, frames int) []float64 {
	switch {
	case frames <= 0:
		return []float64{}
	case frames == 1:
		return []float64{start}
	}
	ts := make([]float64, frames)
	floats.Span(ts, start, end)
	return ts
}
