package burgers_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/burgers2d/internal/burgers"
)

func expectBoundary(f *burgers.Field, want float64) {
	rows, cols := f.Rows(), f.Cols()
	for j := 0; j < cols; j++ {
		ExpectWithOffset(1, f.At(0, j)).To(Equal(want), "top row col %d", j)
		ExpectWithOffset(1, f.At(rows-1, j)).To(Equal(want), "bottom row col %d", j)
	}
	for i := 0; i < rows; i++ {
		ExpectWithOffset(1, f.At(i, 0)).To(Equal(want), "left col row %d", i)
		ExpectWithOffset(1, f.At(i, cols-1)).To(Equal(want), "right col row %d", i)
	}
}

var _ = Describe("Solve", func() {
	var p burgers.Params

	BeforeEach(func() {
		p = burgers.DefaultParams()
	})

	Describe("initial condition", func() {
		It("returns the hump unchanged when Nt is zero", func() {
			p.Nt = 0
			sol, err := burgers.Solve(p)
			Expect(err).NotTo(HaveOccurred())

			u := sol.U
			Expect(u.Rows()).To(Equal(p.Ny))
			Expect(u.Cols()).To(Equal(p.Nx))
			for i := 0; i < u.Rows(); i++ {
				for j := 0; j < u.Cols(); j++ {
					want := 1.0
					if i >= 10 && i <= 20 && j >= 10 && j <= 20 {
						want = 2.0
					}
					Expect(u.At(i, j)).To(Equal(want), "u(%d, %d)", i, j)
				}
			}
		})

		It("indexes rows with dx and columns with dy", func() {
			p.Nx, p.Ny, p.Nt = 20, 40, 0
			u := burgers.InitialCondition(p)

			Expect(u.Rows()).To(Equal(40))
			Expect(u.Cols()).To(Equal(20))
			// dx = 0.1 gives rows 5..10; dy = 0.05 gives cols 10..20, clamped to 19.
			Expect(u.At(5, 10)).To(Equal(2.0))
			Expect(u.At(10, 19)).To(Equal(2.0))
			Expect(u.At(4, 10)).To(Equal(1.0))
			Expect(u.At(11, 10)).To(Equal(1.0))
			Expect(u.At(5, 9)).To(Equal(1.0))
		})
	})

	Describe("grid", func() {
		It("spans [0, L] and [0, M] with Nx and Ny points", func() {
			p.Nu, p.Nt, p.T = 0, 0, 0
			sol, err := burgers.Solve(p)
			Expect(err).NotTo(HaveOccurred())

			x, y := sol.X(), sol.Y()
			Expect(x).To(HaveLen(p.Nx))
			Expect(y).To(HaveLen(p.Ny))
			Expect(x[0]).To(BeNumerically("~", 0, 1e-12))
			Expect(x[len(x)-1]).To(BeNumerically("~", p.L, 1e-12))
			Expect(y[len(y)-1]).To(BeNumerically("~", p.M, 1e-12))

			step := p.L / float64(p.Nx-1)
			for j := 1; j < len(x); j++ {
				Expect(x[j] - x[j-1]).To(BeNumerically("~", step, 1e-12))
			}
		})

		It("builds mesh matrices shaped like the field", func() {
			g := burgers.NewGrid(2, 1, 3, 2)
			xs, ys := g.Mesh()
			Expect(xs.Rows()).To(Equal(2))
			Expect(xs.Cols()).To(Equal(3))
			Expect(xs.At(1, 2)).To(Equal(2.0))
			Expect(ys.At(1, 2)).To(Equal(1.0))
			Expect(ys.At(0, 2)).To(Equal(0.0))
		})
	})

	Describe("boundary", func() {
		DescribeTable("stays at 1.0 for any step count",
			func(t float64, nt int, nu float64) {
				p.T, p.Nt, p.Nu = t, nt, nu
				sol, err := burgers.Solve(p)
				Expect(err).NotTo(HaveOccurred())
				expectBoundary(sol.U, 1.0)
			},
			Entry("no steps", 0.0, 0, 0.5),
			Entry("a few steps", 0.01, 10, 0.5),
			Entry("reference run", 1.0, 2500, 0.5),
			Entry("inviscid", 0.5, 2500, 0.0),
		)
	})

	It("is deterministic", func() {
		p.T = 0.3
		a, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		b, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.U.Equal(b.U)).To(BeTrue())
	})

	It("does not share storage between calls", func() {
		a, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		a.U.Set(15, 15, -7)
		b, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.U.At(15, 15)).To(Equal(2.0))
	})

	It("stays finite and bounded at the reference parameters", func() {
		p.T = 1
		sol, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(sol.U.IsFinite()).To(BeTrue())
		for i := 0; i < sol.U.Rows(); i++ {
			for j := 0; j < sol.U.Cols(); j++ {
				v := sol.U.At(i, j)
				Expect(v).To(BeNumerically(">=", 1-1e-9))
				Expect(v).To(BeNumerically("<=", 2+1e-9))
			}
		}
	})

	It("diffuses the hump over time", func() {
		p.T = 1
		sol, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		peak := 0.0
		for i := 0; i < sol.U.Rows(); i++ {
			for _, v := range sol.U.Row(i) {
				peak = math.Max(peak, v)
			}
		}
		Expect(peak).To(BeNumerically("<", 2.0))
		Expect(peak).To(BeNumerically(">", 1.0))
	})

	It("changes smoothly when dt is refined", func() {
		p.T = 1
		coarse, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		p.Nt *= 2
		fine, err := burgers.Solve(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(coarse.U.EqualApprox(fine.U, 0.05)).To(BeTrue())
	})

	DescribeTable("leaves the field untouched when T is zero",
		func(nu float64, nt int) {
			p.T, p.Nu, p.Nt = 0, nu, nt
			sol, err := burgers.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.U.Equal(burgers.InitialCondition(p))).To(BeTrue())
		},
		Entry("inviscid, one step", 0.0, 1),
		Entry("inviscid, many steps", 0.0, 2500),
		Entry("viscous, many steps", 0.5, 100),
	)

	Describe("failures", func() {
		It("rejects a non-zero time with zero steps", func() {
			p.T, p.Nt = 1, 0
			_, err := burgers.Solve(p)
			Expect(err).To(MatchError(burgers.ErrZeroSteps))
		})

		It("rejects an empty axis", func() {
			p.Nx = 0
			_, err := burgers.Solve(p)
			Expect(err).To(MatchError(burgers.ErrInvalidShape))
		})

		It("degrades silently without interior points", func() {
			p.Nx, p.T = 2, 0.5
			sol, err := burgers.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.U.Equal(burgers.InitialCondition(p))).To(BeTrue())
		})

		It("returns non-finite values instead of an error when unstable", func() {
			p.T, p.Nt = 50, 200
			sol, err := burgers.Solve(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(sol.U.IsFinite()).To(BeFalse())
		})
	})

	Describe("reference values", func() {
		// Rectangular grid with dx != dy, so the v diffusion pairing shows up
		// in u through the convective coupling.
		BeforeEach(func() {
			p = burgers.Params{L: 1.5, M: 2.5, T: 0.2, Nx: 17, Ny: 23, Nt: 400, Nu: 0.01}
		})

		DescribeTable("matches known cells",
			func(i, j int, want float64) {
				sol, err := burgers.Solve(p)
				Expect(err).NotTo(HaveOccurred())
				Expect(sol.U.At(i, j)).To(BeNumerically("~", want, 1e-12))
			},
			Entry("(6, 6)", 6, 6, 1.1342687785815966),
			Entry("(8, 9)", 8, 9, 1.5480498888053482),
			Entry("(10, 10)", 10, 10, 1.753749206114788),
			Entry("(12, 8)", 12, 8, 1.6084885277991978),
			Entry("(9, 12)", 9, 12, 1.487884710492445),
			Entry("(14, 9)", 14, 9, 1.388233571981657),
			Entry("(14, 10)", 14, 10, 1.3943038208018645),
			Entry("(15, 9)", 15, 9, 1.1867048040192405),
			Entry("(15, 10)", 15, 10, 1.1829189430179263),
		)
	})
})
