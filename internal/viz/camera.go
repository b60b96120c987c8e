package viz

import (
	"math"

	"github.com/san-kum/attractor/internal/ode"
	"github.com/san-kum/attractor/internal/sim"
)

// Camera projects 3D phase-space points onto the 2D braille canvas with a
// simple rotate-then-perspective pipeline.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, RotX: -0.4, RotY: 0.6, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// rotate applies the camera's euler angles to a point.
func (c *Camera) rotate(p ode.State) ode.State {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p[1], p[2] = p[1]*cx-p[2]*sx, p[1]*sx+p[2]*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p[0], p[2] = p[0]*cy+p[2]*sy, -p[0]*sy+p[2]*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p[0], p[1] = p[0]*cz-p[1]*sz, p[0]*sz+p[1]*cz
	return p
}

// Project converts a point to sub-pixel canvas coordinates. Returns false
// when the point falls outside the canvas.
func (c *Camera) Project(p ode.State, sw, sh int) (int, int, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot[2] >= c.Distance-0.1 {
		return 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot[2])
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 3.0
	sx := int(rot[0]*scale*pScale) + sw/2
	sy := int(-rot[1]*scale*pScale) + sh/2
	return sx, sy, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// normalizeTrajectory recenters a trajectory on its bounding box midpoint
// and scales the longest axis to [-1, 1] so every attractor fits the view.
func normalizeTrajectory(traj sim.Trajectory) []ode.State {
	min, max := traj.Bounds()
	center := min.Add(max).Scale(0.5)

	span := 0.0
	for i := 0; i < 3; i++ {
		if d := max[i] - min[i]; d > span {
			span = d
		}
	}
	if span == 0 {
		span = 1
	}

	out := make([]ode.State, 0, traj.Len())
	for _, s := range traj {
		if !s.IsValid() {
			continue
		}
		out = append(out, s.Sub(center).Scale(2/span))
	}
	return out
}

// DrawTrajectory3D renders the trajectory polyline through the camera.
func DrawTrajectory3D(c *Canvas, traj sim.Trajectory, cam *Camera) {
	if c == nil || cam == nil || traj.Len() == 0 {
		return
	}

	points := normalizeTrajectory(traj)
	cw, ch := c.Width*2, c.Height*4

	prevX, prevY, prevOK := 0, 0, false
	for _, p := range points {
		x, y, ok := cam.Project(p, cw, ch)
		if ok && prevOK {
			c.DrawLine(prevX, prevY, x, y)
		} else if ok {
			c.Set(x, y)
		}
		prevX, prevY, prevOK = x, y, ok
	}
}
