package burgers

import "math"

// Reference baseline.
const (
	DefaultL  = 2.0
	DefaultM  = 2.0
	DefaultT  = 0.0
	DefaultNx = 40
	DefaultNy = 40
	DefaultNt = 2500
	DefaultNu = 0.5
)

// Params fully determines a solve. Derived step sizes are recomputed from it
// on every call.
type Params struct {
	L  float64 `json:"l" yaml:"l"`   // extent along x
	M  float64 `json:"m" yaml:"m"`   // extent along y
	T  float64 `json:"t" yaml:"t"`   // simulated time
	Nx int     `json:"nx" yaml:"nx"` // grid points along x (columns)
	Ny int     `json:"ny" yaml:"ny"` // grid points along y (rows)
	Nt int     `json:"nt" yaml:"nt"` // time steps
	Nu float64 `json:"nu" yaml:"nu"` // viscosity
}

func DefaultParams() Params {
	return Params{
		L:  DefaultL,
		M:  DefaultM,
		T:  DefaultT,
		Nx: DefaultNx,
		Ny: DefaultNy,
		Nt: DefaultNt,
		Nu: DefaultNu,
	}
}

// Dx is L/Nx. Note the divisor is the point count, not the interval count.
func (p Params) Dx() float64 { return p.L / float64(p.Nx) }

// Dy is M/Ny.
func (p Params) Dy() float64 { return p.M / float64(p.Ny) }

// Dt is T/Nt, or zero when no steps are taken.
func (p Params) Dt() float64 {
	if p.Nt == 0 {
		return 0
	}
	return p.T / float64(p.Nt)
}

// Validate applies the strict preconditions. Solve does not call it; a
// parameter set that fails here may still solve, but the result is either
// degenerate or meaningless.
func (p Params) Validate() error {
	switch {
	case !(p.L > 0) || math.IsInf(p.L, 0):
		return &ParamError{Name: "L", Value: p.L, Reason: "must be positive and finite", Wrapped: ErrParameterBounds}
	case !(p.M > 0) || math.IsInf(p.M, 0):
		return &ParamError{Name: "M", Value: p.M, Reason: "must be positive and finite", Wrapped: ErrParameterBounds}
	case p.Nx < 3:
		return &ParamError{Name: "Nx", Value: float64(p.Nx), Reason: "must be at least 3", Wrapped: ErrParameterBounds}
	case p.Ny < 3:
		return &ParamError{Name: "Ny", Value: float64(p.Ny), Reason: "must be at least 3", Wrapped: ErrParameterBounds}
	case p.Nt < 0:
		return &ParamError{Name: "Nt", Value: float64(p.Nt), Reason: "must not be negative", Wrapped: ErrParameterBounds}
	case !(p.T >= 0) || math.IsInf(p.T, 0):
		return &ParamError{Name: "T", Value: p.T, Reason: "must be non-negative and finite", Wrapped: ErrParameterBounds}
	case !(p.Nu >= 0) || math.IsInf(p.Nu, 0):
		return &ParamError{Name: "nu", Value: p.Nu, Reason: "must be non-negative and finite", Wrapped: ErrParameterBounds}
	case p.Nt == 0 && p.T != 0:
		return &ParamError{Name: "Nt", Value: 0, Reason: "must be positive when T is non-zero", Wrapped: ErrZeroSteps}
	}
	return nil
}
