package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/burgers2d/internal/burgers"
)

var (
	background = color.RGBA{255, 255, 255, 255}
	ink        = color.RGBA{0, 0, 0, 255}
	gridInk    = color.RGBA{176, 176, 176, 255}
)

// screenLimit drops quads projected this far off-image, which keeps the
// integer edge functions in fillTriangle from overflowing.
const screenLimit = 1 << 24

// zAspect is the height of the z range relative to the x and y extents.
const zAspect = 0.75

// Surface paints a field over its grid as filled quads.
type Surface struct {
	Camera   *Camera
	Colormap *Colormap
	Width    int
	Height   int
	ZMin     float64
	ZMax     float64
}

func NewSurface(width, height int, zmin, zmax float64) *Surface {
	return &Surface{
		Camera:   NewCamera(DefaultElev, DefaultAzim),
		Colormap: NewColormap(zmin, zmax),
		Width:    width,
		Height:   height,
		ZMin:     zmin,
		ZMax:     zmax,
	}
}

// Title is the caption drawn above a frame with viscosity nu.
func Title(nu float64) string {
	return fmt.Sprintf("Burgers' Equation for nu = %g", nu)
}

// box maps grid coordinates into the unit box the camera looks at.
type box struct {
	x0, x1, y0, y1, z0, z1 float64
}

func newBox(g burgers.Grid, zmin, zmax float64) box {
	b := box{x0: 0, x1: 1, y0: 0, y1: 1, z0: zmin, z1: zmax}
	if n := len(g.X); n > 1 {
		b.x0, b.x1 = g.X[0], g.X[n-1]
	}
	if n := len(g.Y); n > 1 {
		b.y0, b.y1 = g.Y[0], g.Y[n-1]
	}
	if b.z1 <= b.z0 {
		b.z1 = b.z0 + 1
	}
	return b
}

func (b box) point(x, y, z float64) Vec3 {
	return Vec3{
		X: (x-b.x0)/(b.x1-b.x0) - 0.5,
		Y: (y-b.y0)/(b.y1-b.y0) - 0.5,
		Z: ((z-b.z0)/(b.z1-b.z0) - 0.5) * zAspect,
	}
}

type quad struct {
	pts   [4]image.Point
	depth float64
	fill  color.RGBA
}

// Render draws sol.U over the grid with title above it.
func (s *Surface) Render(sol *burgers.Solution, title string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	b := newBox(sol.Grid, s.ZMin, s.ZMax)
	s.drawAxes(img, b)

	quads := s.project(sol, b)
	sort.Slice(quads, func(i, j int) bool { return quads[i].depth < quads[j].depth })
	for _, q := range quads {
		fillTriangle(img, q.pts[0], q.pts[1], q.pts[2], q.fill)
		fillTriangle(img, q.pts[0], q.pts[2], q.pts[3], q.fill)
	}

	if title != "" {
		w := font.MeasureString(basicfont.Face7x13, title).Ceil()
		addLabel(img, (s.Width-w)/2, 20, title, ink)
	}
	return img
}

func (s *Surface) project(sol *burgers.Solution, b box) []quad {
	u := sol.U
	rows, cols := u.Rows(), u.Cols()
	if rows < 2 || cols < 2 {
		return nil
	}
	xs, ys := sol.Grid.Mesh()

	quads := make([]quad, 0, (rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			corners := [4][2]int{{i, j}, {i, j + 1}, {i + 1, j + 1}, {i + 1, j}}

			var q quad
			var sum float64
			ok := true
			for k, c := range corners {
				z := u.At(c[0], c[1])
				p := b.point(xs.At(c[0], c[1]), ys.At(c[0], c[1]), z)
				if !p.IsFinite() {
					ok = false
					break
				}
				sx, sy, d := s.Camera.Project(p, s.Width, s.Height)
				if math.Abs(sx) > screenLimit || math.Abs(sy) > screenLimit {
					ok = false
					break
				}
				q.pts[k] = image.Pt(int(math.Round(sx)), int(math.Round(sy)))
				q.depth += d / 4
				sum += z
			}
			if !ok {
				continue
			}
			q.fill = s.Colormap.At(sum / 4)
			quads = append(quads, q)
		}
	}
	return quads
}

// drawAxes outlines the floor of the box and labels the three axes.
func (s *Surface) drawAxes(img *image.RGBA, b box) {
	pt := func(x, y, z float64) image.Point {
		sx, sy, _ := s.Camera.Project(b.point(x, y, z), s.Width, s.Height)
		return image.Pt(int(math.Round(sx)), int(math.Round(sy)))
	}

	floor := [4]image.Point{pt(b.x0, b.y0, b.z0), pt(b.x1, b.y0, b.z0), pt(b.x1, b.y1, b.z0), pt(b.x0, b.y1, b.z0)}
	for k := range floor {
		drawLine(img, floor[k], floor[(k+1)%4], gridInk)
	}

	xEnd, yEnd, zEnd := pt(b.x1, b.y0, b.z0), pt(b.x0, b.y1, b.z0), pt(b.x0, b.y0, b.z1)
	origin := floor[0]
	drawLine(img, origin, xEnd, ink)
	drawLine(img, origin, yEnd, ink)
	drawLine(img, origin, zEnd, ink)

	addLabel(img, xEnd.X+6, xEnd.Y+6, "x", ink)
	addLabel(img, yEnd.X+6, yEnd.Y+6, "y", ink)
	addLabel(img, zEnd.X+6, zEnd.Y, "u", ink)
	addLabel(img, origin.X+6, origin.Y+14, fmt.Sprintf("%g", b.z0), gridInk)
	addLabel(img, zEnd.X-28, zEnd.Y, fmt.Sprintf("%g", b.z1), gridInk)
}

func addLabel(img *image.RGBA, x, y int, label string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(label)
}

// drawLine uses Bresenham's algorithm, clipped to the image.
func drawLine(img *image.RGBA, p0, p1 image.Point, col color.RGBA) {
	r := img.Bounds()
	if r.Empty() {
		return
	}
	o := r.Min
	fx0, fy0, fx1, fy1, ok := clipSegment(
		float64(p0.X-o.X), float64(p0.Y-o.Y), float64(p1.X-o.X), float64(p1.Y-o.Y),
		float64(r.Dx()-1), float64(r.Dy()-1),
	)
	if !ok {
		return
	}
	x0, y0 := int(math.Round(fx0))+o.X, int(math.Round(fy0))+o.Y
	x1, y1 := int(math.Round(fx1))+o.X, int(math.Round(fy1))+o.Y
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		if image.Pt(x0, y0).In(r) {
			img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle fills every pixel centre inside abc, for either winding.
func fillTriangle(img *image.RGBA, a, b, c image.Point, col color.RGBA) {
	r := image.Rect(
		min(a.X, b.X, c.X), min(a.Y, b.Y, c.Y),
		max(a.X, b.X, c.X)+1, max(a.Y, b.Y, c.Y)+1,
	).Intersect(img.Bounds())
	if r.Empty() {
		return
	}

	edge := func(p, q image.Point, x, y int) int {
		return (q.X-p.X)*(y-p.Y) - (q.Y-p.Y)*(x-p.X)
	}
	if edge(a, b, c.X, c.Y) == 0 {
		drawLine(img, a, b, col)
		drawLine(img, b, c, col)
		drawLine(img, c, a, col)
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			w0, w1, w2 := edge(b, c, x, y), edge(c, a, x, y), edge(a, b, x, y)
			if (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
