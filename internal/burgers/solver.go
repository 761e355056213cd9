package burgers

// Hump initial condition: the block 0.5 <= x, y <= 1 starts at HumpValue,
// everything else (including the fixed boundary) at BaseValue.
const (
	BaseValue = 1.0
	HumpValue = 2.0

	humpLo = 0.5
	humpHi = 1.0
)

// Solution is the state of u at time T together with its sample grid.
type Solution struct {
	Params Params `json:"params"`
	Grid   Grid   `json:"grid"`
	U      *Field `json:"-"`
}

// X returns the x samples (one per column of U).
func (s *Solution) X() []float64 { return s.Grid.X }

// Y returns the y samples (one per row of U).
func (s *Solution) Y() []float64 { return s.Grid.Y }

// Solve marches the hump initial condition Nt explicit steps to time T and
// returns u. v is advanced alongside u for the convective coupling but not
// returned.
//
// Solve performs no stability or range checks beyond what it needs to run:
// Nt == 0 with T != 0 returns ErrZeroSteps and a grid with no points along
// an axis returns ErrInvalidShape. Grids narrower than three points have no
// interior and come back as the initial condition. Unstable parameters yield
// non-finite values, not an error.
func Solve(p Params) (*Solution, error) {
	if p.Nt == 0 && p.T != 0 {
		return nil, ErrZeroSteps
	}
	if p.Nx < 1 || p.Ny < 1 {
		return nil, ErrInvalidShape
	}

	s := newStepper(p)
	for n := 0; n < p.Nt; n++ {
		s.step()
	}

	return &Solution{
		Params: p,
		Grid:   NewGrid(p.L, p.M, p.Nx, p.Ny),
		U:      s.u,
	}, nil
}

// InitialCondition returns the Ny×Nx hump field for p.
func InitialCondition(p Params) *Field {
	f := NewField(p.Ny, p.Nx, BaseValue)
	r0, r1 := humpRange(p.Dx(), p.Ny)
	c0, c1 := humpRange(p.Dy(), p.Nx)
	for i := r0; i < r1; i++ {
		for j := c0; j < c1; j++ {
			f.Set(i, j, HumpValue)
		}
	}
	return f
}

// humpRange converts [humpLo, humpHi] into a half-open index range along an
// axis with n points, truncating toward zero and clamping to the axis.
// Rows are indexed with dx and columns with dy; callers keep that pairing.
func humpRange(d float64, n int) (int, int) {
	lo := clampIndex(humpLo/d, n)
	hi := clampIndex(humpHi/d, n) + 1
	if hi > n {
		hi = n
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampIndex(v float64, n int) int {
	// int() of NaN or ±Inf is unspecified, so range-check in float space.
	if !(v > 0) {
		return 0
	}
	if v >= float64(n) {
		return n
	}
	return int(v)
}

// stepper double-buffers u and v: u/v are the step being written, un/vn
// the previous step being read. Both buffers start as the initial
// condition, so the boundary ring is identical in each and never written.
type stepper struct {
	u, v, un, vn   *Field
	dt, dx, dy, nu float64
	dx2, dy2       float64
}

func newStepper(p Params) *stepper {
	u := InitialCondition(p)
	dx, dy := p.Dx(), p.Dy()
	return &stepper{
		u:   u,
		v:   u.Clone(),
		un:  u.Clone(),
		vn:  u.Clone(),
		dt:  p.Dt(),
		dx:  dx,
		dy:  dy,
		nu:  p.Nu,
		dx2: dx * dx,
		dy2: dy * dy,
	}
}

func (s *stepper) step() {
	s.u, s.un = s.un, s.u
	s.v, s.vn = s.vn, s.v

	u, stride := s.u.raw()
	v, _ := s.v.raw()
	un, _ := s.un.raw()
	vn, _ := s.vn.raw()
	rows, cols := s.u.Rows(), s.u.Cols()
	dt, dx, dy, nu, dx2, dy2 := s.dt, s.dx, s.dy, s.nu, s.dx2, s.dy2

	for i := 1; i < rows-1; i++ {
		for j := 1; j < cols-1; j++ {
			k := i*stride + j
			w, e := k-1, k+1
			n, so := k-stride, k+stride

			u[k] = un[k] -
				un[k]*dt/dx*(un[k]-un[w]) -
				vn[k]*dt/dy*(un[k]-un[n]) +
				nu*dt/dx2*(un[e]-2*un[k]+un[w]) +
				nu*dt/dy2*(un[so]-2*un[k]+un[n])

			// Diffusion pairs dx with the row neighbours and dy with the
			// column neighbours here, the reverse of u.
			v[k] = vn[k] -
				un[k]*dt/dx*(vn[k]-vn[n]) -
				vn[k]*dt/dy*(vn[k]-vn[w]) +
				nu*dt/dx2*(vn[so]-2*vn[k]+vn[n]) +
				nu*dt/dy2*(vn[e]-2*vn[k]+vn[w])
		}
	}
}
