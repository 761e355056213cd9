package burgers_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/burgers2d/internal/burgers"
)

var _ = Describe("Params", func() {
	It("defaults to the reference baseline", func() {
		p := burgers.DefaultParams()
		Expect(p).To(Equal(burgers.Params{L: 2, M: 2, T: 0, Nx: 40, Ny: 40, Nt: 2500, Nu: 0.5}))
		Expect(p.Dx()).To(BeNumerically("~", 0.05, 1e-15))
		Expect(p.Dy()).To(BeNumerically("~", 0.05, 1e-15))
		Expect(p.Dt()).To(Equal(0.0))
	})

	It("treats dt as zero without steps", func() {
		p := burgers.DefaultParams()
		p.Nt = 0
		Expect(p.Dt()).To(Equal(0.0))
	})

	DescribeTable("Validate",
		func(mutate func(*burgers.Params), want error) {
			p := burgers.DefaultParams()
			mutate(&p)
			err := p.Validate()
			if want == nil {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(err).To(MatchError(want))
			var pe *burgers.ParamError
			Expect(errors.As(err, &pe)).To(BeTrue())
		},
		Entry("defaults", func(p *burgers.Params) {}, nil),
		Entry("zero steps at zero time", func(p *burgers.Params) { p.Nt = 0 }, nil),
		Entry("zero L", func(p *burgers.Params) { p.L = 0 }, burgers.ErrParameterBounds),
		Entry("negative M", func(p *burgers.Params) { p.M = -1 }, burgers.ErrParameterBounds),
		Entry("NaN L", func(p *burgers.Params) { p.L = math.NaN() }, burgers.ErrParameterBounds),
		Entry("narrow x", func(p *burgers.Params) { p.Nx = 2 }, burgers.ErrParameterBounds),
		Entry("narrow y", func(p *burgers.Params) { p.Ny = 1 }, burgers.ErrParameterBounds),
		Entry("negative steps", func(p *burgers.Params) { p.Nt = -1 }, burgers.ErrParameterBounds),
		Entry("negative time", func(p *burgers.Params) { p.T = -0.1 }, burgers.ErrParameterBounds),
		Entry("negative viscosity", func(p *burgers.Params) { p.Nu = -0.5 }, burgers.ErrParameterBounds),
		Entry("time without steps", func(p *burgers.Params) { p.T, p.Nt = 1, 0 }, burgers.ErrZeroSteps),
	)

	Describe("Stability", func() {
		It("accepts the reference run", func() {
			p := burgers.DefaultParams()
			p.T = 1
			r := p.Stability()
			Expect(r.Stable).To(BeTrue())
			Expect(r.DiffusionX).To(BeNumerically("~", 0.08, 1e-12))
			Expect(r.CourantX).To(BeNumerically("~", 0.016, 1e-12))
		})

		It("flags too few steps", func() {
			p := burgers.DefaultParams()
			p.T, p.Nt = 1, 10
			Expect(p.Stability().Stable).To(BeFalse())
		})

		It("finds the smallest stable step count", func() {
			p := burgers.DefaultParams()
			p.T = 1
			n := burgers.MinSteps(p)
			Expect(n).To(BeNumerically(">=", 800))

			p.Nt = n
			Expect(p.Stability().Stable).To(BeTrue())
			p.Nt = n - 1
			Expect(p.Stability().Stable).To(BeFalse())
		})

		It("needs more steps for larger viscosity", func() {
			p := burgers.DefaultParams()
			p.T = 1
			low := burgers.MinSteps(p)
			p.Nu = 2
			Expect(burgers.MinSteps(p)).To(BeNumerically(">", low))
		})

		It("needs no steps for zero time", func() {
			Expect(burgers.MinSteps(burgers.DefaultParams())).To(Equal(0))
		})
	})
})
