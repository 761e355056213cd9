package burgers

import "gonum.org/v1/gonum/floats"

// Grid holds the sample coordinates of a solve. X has one entry per column
// and Y one entry per row of the returned Field.
type Grid struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// NewGrid samples [0, l] with nx points and [0, m] with ny points, both
// endpoints included.
func NewGrid(l, m float64, nx, ny int) Grid {
	return Grid{X: linspace(l, nx), Y: linspace(m, ny)}
}

func linspace(stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{0}
	}
	s := make([]float64, n)
	floats.Span(s, 0, stop)
	return s
}

// Mesh expands the grid into coordinate matrices shaped like a Field:
// xs.At(i, j) == X[j] and ys.At(i, j) == Y[i].
func (g Grid) Mesh() (xs, ys *Field) {
	xs = NewField(len(g.Y), len(g.X), 0)
	ys = NewField(len(g.Y), len(g.X), 0)
	for i, y := range g.Y {
		for j, x := range g.X {
			xs.Set(i, j, x)
			ys.Set(i, j, y)
		}
	}
	return xs, ys
}
