package render

import (
	"github.com/san-kum/burgers2d/internal/burgers"
)

// maxWireLines bounds how many grid lines are drawn per direction.
const maxWireLines = 24

// DrawWireframe draws sol.U as grid lines along x and y on the canvas.
// Segments touching a non-finite sample are skipped; the rest are clipped
// to the canvas, so blown-up fields draw in bounded time.
func DrawWireframe(c *Canvas, cam *Camera, sol *burgers.Solution, zmin, zmax float64) {
	u := sol.U
	if c == nil || cam == nil || u == nil {
		return
	}
	rows, cols := u.Rows(), u.Cols()
	w, h := c.Dots()
	b := newBox(sol.Grid, zmin, zmax)
	xs, ys := sol.Grid.Mesh()

	type dot struct {
		x, y float64
		ok   bool
	}
	proj := make([]dot, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			p := b.point(xs.At(i, j), ys.At(i, j), u.At(i, j))
			if !p.IsFinite() {
				continue
			}
			sx, sy, _ := cam.Project(p, w, h)
			proj[i*cols+j] = dot{sx, sy, true}
		}
	}

	segment := func(p, q dot) {
		if p.ok && q.ok {
			c.line(p.x, p.y, q.x, q.y)
		}
	}

	rowStep := max(1, (rows+maxWireLines-1)/maxWireLines)
	colStep := max(1, (cols+maxWireLines-1)/maxWireLines)
	for i := 0; i < rows; i += rowStep {
		for j := 0; j+1 < cols; j++ {
			segment(proj[i*cols+j], proj[i*cols+j+1])
		}
	}
	for j := 0; j < cols; j += colStep {
		for i := 0; i+1 < rows; i++ {
			segment(proj[i*cols+j], proj[(i+1)*cols+j])
		}
	}
}
