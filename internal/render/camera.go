package render

import "math"

const (
	DefaultElev = 60.0
	DefaultAzim = 135.0
)

// Camera is an orthographic view of the unit box centred on the origin.
// Elev is the angle above the x-y plane and Azim the angle around z,
// measured from +x towards +y, both in degrees.
type Camera struct {
	Elev, Azim float64
	Zoom       float64
}

func NewCamera(elev, azim float64) *Camera {
	return &Camera{Elev: elev, Azim: azim, Zoom: 1.0}
}

func (c *Camera) Rotate(dElev, dAzim float64) {
	c.Elev = math.Max(-90, math.Min(90, c.Elev+dElev))
	c.Azim = math.Mod(c.Azim+dAzim, 360)
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// basis returns the unit vectors pointing right, up and towards the viewer.
func (c *Camera) basis() (right, up, eye Vec3) {
	el := c.Elev * math.Pi / 180
	az := c.Azim * math.Pi / 180
	se, ce := math.Sin(el), math.Cos(el)
	sa, ca := math.Sin(az), math.Cos(az)

	right = Vec3{-sa, ca, 0}
	up = Vec3{-se * ca, -se * sa, ce}
	eye = Vec3{ce * ca, ce * sa, se}
	return right, up, eye
}

// Project maps p to screen coordinates on a w x h target with y growing
// downwards. Larger depth is closer to the viewer.
func (c *Camera) Project(p Vec3, w, h int) (sx, sy, depth float64) {
	right, up, eye := c.basis()
	scale := c.Zoom * float64(min(w, h)) / 2
	sx = float64(w)/2 + p.Dot(right)*scale
	sy = float64(h)/2 - p.Dot(up)*scale
	return sx, sy, p.Dot(eye)
}
