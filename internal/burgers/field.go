package burgers

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Field is a Ny×Nx sample of one velocity component. Rows run along y and
// columns along x: the value at physical point (x[j], y[i]) is At(i, j).
type Field struct {
	m *mat.Dense
}

// NewField allocates a rows×cols field filled with v. It panics if either
// dimension is not positive.
func NewField(rows, cols int, v float64) *Field {
	data := make([]float64, rows*cols)
	if v != 0 {
		for i := range data {
			data[i] = v
		}
	}
	return &Field{m: mat.NewDense(rows, cols, data)}
}

// FieldFromRows builds a field from row slices (row index = y index).
func FieldFromRows(rows [][]float64) *Field {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil
	}
	f := NewField(len(rows), len(rows[0]), 0)
	for i, r := range rows {
		f.m.SetRow(i, r)
	}
	return f
}

// Rows is the number of y samples.
func (f *Field) Rows() int {
	r, _ := f.m.Dims()
	return r
}

// Cols is the number of x samples.
func (f *Field) Cols() int {
	_, c := f.m.Dims()
	return c
}

// At returns the value at y index row and x index col.
func (f *Field) At(row, col int) float64 { return f.m.At(row, col) }

// Set writes the value at y index row and x index col.
func (f *Field) Set(row, col int, v float64) { f.m.Set(row, col, v) }

// Row returns a copy of the samples along x at y index i.
func (f *Field) Row(i int) []float64 {
	return mat.Row(nil, i, f.m)
}

// Col returns a copy of the samples along y at x index j.
func (f *Field) Col(j int) []float64 {
	return mat.Col(nil, j, f.m)
}

// Slices copies the field out as one slice per y index.
func (f *Field) Slices() [][]float64 {
	out := make([][]float64, f.Rows())
	for i := range out {
		out[i] = f.Row(i)
	}
	return out
}

// Matrix exposes the field as a read-only gonum matrix.
func (f *Field) Matrix() mat.Matrix { return f.m }

func (f *Field) Clone() *Field {
	return &Field{m: mat.DenseCopyOf(f.m)}
}

// Equal reports bit-for-bit equality of shape and values.
func (f *Field) Equal(o *Field) bool {
	return mat.Equal(f.m, o.m)
}

// EqualApprox reports element-wise equality within tol.
func (f *Field) EqualApprox(o *Field, tol float64) bool {
	return mat.EqualApprox(f.m, o.m, tol)
}

// IsFinite reports whether no sample is NaN or infinite.
func (f *Field) IsFinite() bool {
	raw := f.m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		for _, v := range raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

func (f *Field) raw() ([]float64, int) {
	raw := f.m.RawMatrix()
	return raw.Data, raw.Stride
}
