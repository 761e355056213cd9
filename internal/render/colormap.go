package render

import (
	"image/color"
	"math"

	"github.com/mazznoer/colorgrad"
)

// paletteSize leaves room in a 256 entry GIF palette for the ink colors.
const paletteSize = 250

// Colormap maps u values in [Lo, Hi] onto the plasma gradient.
type Colormap struct {
	Lo, Hi float64
	colors []color.Color
}

func NewColormap(lo, hi float64) *Colormap {
	return &Colormap{
		Lo:     lo,
		Hi:     hi,
		colors: colorgrad.Plasma().Colors(paletteSize),
	}
}

// Index returns the palette index for v. Values outside [Lo, Hi] clamp to
// the ends; NaN maps to the low end.
func (m *Colormap) Index(v float64) int {
	span := m.Hi - m.Lo
	if span <= 0 || math.IsNaN(v) {
		return 0
	}
	t := math.Max(0, math.Min(1, (v-m.Lo)/span))
	return int(t*float64(len(m.colors)-1) + 0.5)
}

func (m *Colormap) At(v float64) color.RGBA {
	return toRGBA(m.colors[m.Index(v)])
}

// Colors returns a copy of the gradient stops, low to high.
func (m *Colormap) Colors() []color.Color {
	return append([]color.Color(nil), m.colors...)
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
