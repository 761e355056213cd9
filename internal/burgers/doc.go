// Package burgers solves the two-dimensional coupled viscous Burgers'
// equations on a rectangle with an explicit finite-difference scheme:
//
//	du/dt + u du/dx + v du/dy = nu (d2u/dx2 + d2u/dy2)
//	dv/dt + u dv/dx + v dv/dy = nu (d2v/dx2 + d2v/dy2)
//
// The package exposes:
//
//   - [Params]: domain extents, resolution, simulated time and viscosity
//   - [Grid]: evenly spaced x and y samples
//   - [Field]: a Ny×Nx sample of one velocity component
//   - [Solve]: marches the hump initial condition to time T
//   - [StabilityReport]: advisory stability numbers for a parameter set
//
// # Storage Order
//
// Fields are stored with the row index along y and the column index along
// x. The physical point (x[j], y[i]) therefore lives at Field.At(i, j).
// Code that thinks in (x, y) must swap the order when indexing.
//
// # Stability
//
// The scheme is explicit and first order in time. Solve never adjusts the
// step: the caller picks Nt, and Nt has to grow as nu grows (diffusion
// limit) and as T grows. Unstable parameters produce non-finite values
// rather than an error. Use [Params.Stability] or [MinSteps] to check a
// parameter set before running it.
//
// # Example
//
//	p := burgers.DefaultParams()
//	p.T = 0.5
//	sol, err := burgers.Solve(p)
//	if err != nil {
//	    return err
//	}
//	peak := sol.U.At(20, 20)
package burgers
