package metrics

import (
	"math"

	"github.com/san-kum/burgers2d/internal/burgers"
)

// Finite is the fraction of observed cells holding finite values. A stable
// run reports 1; a run that blew up reports less.
type Finite struct {
	name    string
	finite  int
	samples int
}

func NewFinite() *Finite {
	return &Finite{name: "finite"}
}

func (s *Finite) Name() string {
	return s.name
}

func (s *Finite) Observe(f *burgers.Field) {
	for i := 0; i < f.Rows(); i++ {
		for _, v := range f.Row(i) {
			s.samples++
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				s.finite++
			}
		}
	}
}

func (s *Finite) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.finite) / float64(s.samples)
}

func (s *Finite) Reset() {
	s.finite = 0
	s.samples = 0
}
