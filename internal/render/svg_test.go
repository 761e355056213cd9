package render

import (
	"math"
	"strings"
	"testing"
)

func TestCanvasToSVG(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 10)
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 circles, got %d", got)
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Errorf("unexpected svg size in %s", svg)
	}
	if CanvasToSVG(nil, 1) != "" {
		t.Error("expected empty svg for nil canvas")
	}
}

func TestProfileToSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 2, math.NaN(), 1}

	svg := ProfileToSVG(xs, ys, 100, 50, "#cc4778")
	if !strings.Contains(svg, `stroke="#cc4778"`) {
		t.Error("expected stroke color")
	}
	// the NaN sample restarts the path
	if got := strings.Count(svg, "M"); got != 2 {
		t.Errorf("expected 2 move commands, got %d", got)
	}
	if !strings.Contains(svg, "M0.0,") {
		t.Errorf("expected path to start at x=0: %s", svg)
	}

	if ProfileToSVG([]float64{1}, []float64{1}, 10, 10, "#000") != "" {
		t.Error("expected empty svg for a single point")
	}
}
