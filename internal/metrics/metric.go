package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/burgers2d/internal/burgers"
)

// Metric accumulates a scalar over one or more observed fields.
type Metric interface {
	Name() string
	Observe(f *burgers.Field)
	Value() float64
	Reset()
}

// Defaults returns the metric set recorded with every stored run.
func Defaults() []Metric {
	return []Metric{NewMax(), NewMin(), NewMean(), NewFinite()}
}

// Collect observes f with each metric and returns the values by name.
func Collect(f *burgers.Field, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		m.Observe(f)
		out[m.Name()] = m.Value()
	}
	return out
}

type Max struct {
	value   float64
	samples int
}

func NewMax() *Max { return &Max{value: math.Inf(-1)} }

func (m *Max) Name() string { return "max" }

func (m *Max) Observe(f *burgers.Field) {
	m.value = math.Max(m.value, mat.Max(f.Matrix()))
	m.samples++
}

func (m *Max) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.value
}

func (m *Max) Reset() {
	m.value = math.Inf(-1)
	m.samples = 0
}

type Min struct {
	value   float64
	samples int
}

func NewMin() *Min { return &Min{value: math.Inf(1)} }

func (m *Min) Name() string { return "min" }

func (m *Min) Observe(f *burgers.Field) {
	m.value = math.Min(m.value, mat.Min(f.Matrix()))
	m.samples++
}

func (m *Min) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.value
}

func (m *Min) Reset() {
	m.value = math.Inf(1)
	m.samples = 0
}

// Mean is the cell average over every observed sample.
type Mean struct {
	sum   float64
	cells int
}

func NewMean() *Mean { return &Mean{} }

func (m *Mean) Name() string { return "mean" }

func (m *Mean) Observe(f *burgers.Field) {
	m.sum += mat.Sum(f.Matrix())
	m.cells += f.Rows() * f.Cols()
}

func (m *Mean) Value() float64 {
	if m.cells == 0 {
		return 0
	}
	return m.sum / float64(m.cells)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.cells = 0
}
