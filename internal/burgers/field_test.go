package burgers_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/burgers2d/internal/burgers"
)

var _ = Describe("Field", func() {
	It("addresses values as (y index, x index)", func() {
		f := burgers.NewField(2, 3, 1)
		f.Set(1, 2, 5)
		Expect(f.At(1, 2)).To(Equal(5.0))
		Expect(f.Row(1)).To(Equal([]float64{1, 1, 5}))
		Expect(f.Col(2)).To(Equal([]float64{1, 5}))
	})

	It("builds from rows", func() {
		f := burgers.FieldFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
		Expect(f.Rows()).To(Equal(3))
		Expect(f.Cols()).To(Equal(2))
		Expect(f.At(2, 0)).To(Equal(5.0))
		Expect(burgers.FieldFromRows(nil)).To(BeNil())
		Expect(f.Slices()).To(Equal([][]float64{{1, 2}, {3, 4}, {5, 6}}))
	})

	It("clones independently", func() {
		f := burgers.NewField(2, 2, 1)
		c := f.Clone()
		c.Set(0, 0, 9)
		Expect(f.At(0, 0)).To(Equal(1.0))
		Expect(f.Equal(c)).To(BeFalse())
		Expect(f.EqualApprox(c, 10)).To(BeTrue())
	})

	It("detects non-finite samples", func() {
		f := burgers.NewField(2, 2, 1)
		Expect(f.IsFinite()).To(BeTrue())
		f.Set(1, 1, math.Inf(1))
		Expect(f.IsFinite()).To(BeFalse())
	})
})
