package burgers

import "math"

// PeakSpeed bounds |u| and |v| for the hump initial condition; the scheme
// keeps the field inside [BaseValue, HumpValue] while it is stable.
const PeakSpeed = HumpValue

// Explicit-scheme limits: the summed diffusion number and the summed
// Courant number.
const (
	MaxDiffusion = 0.5
	MaxCourant   = 1.0
)

// StabilityReport holds the dimensionless step numbers for a parameter set.
type StabilityReport struct {
	DiffusionX float64 `json:"diffusion_x"` // nu*dt/dx^2
	DiffusionY float64 `json:"diffusion_y"` // nu*dt/dy^2
	CourantX   float64 `json:"courant_x"`   // PeakSpeed*dt/dx
	CourantY   float64 `json:"courant_y"`   // PeakSpeed*dt/dy
	Stable     bool    `json:"stable"`
}

// Stability evaluates p against the explicit scheme limits. It is advisory;
// Solve runs whatever it is given.
func (p Params) Stability() StabilityReport {
	dt, dx, dy := p.Dt(), p.Dx(), p.Dy()
	r := StabilityReport{
		DiffusionX: p.Nu * dt / (dx * dx),
		DiffusionY: p.Nu * dt / (dy * dy),
		CourantX:   PeakSpeed * dt / dx,
		CourantY:   PeakSpeed * dt / dy,
	}
	r.Stable = r.DiffusionX+r.DiffusionY <= MaxDiffusion && r.CourantX+r.CourantY <= MaxCourant
	return r
}

// MinSteps returns the smallest Nt that keeps p inside the limits at p.T,
// or 0 when T is zero. Smaller viscosity needs fewer steps for diffusion but
// the convective limit still applies.
func MinSteps(p Params) int {
	if p.T <= 0 {
		return 0
	}
	dx, dy := p.Dx(), p.Dy()
	maxDt := MaxCourant / (PeakSpeed * (1/dx + 1/dy))
	if p.Nu > 0 {
		maxDt = math.Min(maxDt, MaxDiffusion/(p.Nu*(1/(dx*dx)+1/(dy*dy))))
	}
	if !(maxDt > 0) || math.IsInf(maxDt, 0) {
		return 0
	}
	nt := int(math.Ceil(p.T / maxDt))
	if nt < 1 {
		nt = 1
	}
	// Rounding in T/Nt can leave the ceiling a step short.
	for range 4 {
		q := p
		q.Nt = nt
		if q.Stability().Stable {
			break
		}
		nt++
	}
	return nt
}
