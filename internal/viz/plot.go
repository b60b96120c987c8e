package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/attractor/internal/sim"
)

// Plane names a 2D projection of phase space, e.g. "xoy" is the x-y plane.
type Plane string

const (
	PlaneXOY Plane = "xoy"
	PlaneXOZ Plane = "xoz"
	PlaneYOZ Plane = "yoz"
)

// Axes returns the trajectory column indices of the plane's horizontal and
// vertical axes.
func (p Plane) Axes() (h, v int, err error) {
	switch p {
	case PlaneXOY:
		return 0, 1, nil
	case PlaneXOZ:
		return 0, 2, nil
	case PlaneYOZ:
		return 1, 2, nil
	}
	return 0, 0, fmt.Errorf("viz: unknown projection %q (expected xoy, xoz or yoz)", p)
}

// AxisIndex resolves a variable name to its trajectory column.
func AxisIndex(name string) (int, error) {
	switch strings.ToLower(name) {
	case "x":
		return 0, nil
	case "y":
		return 1, nil
	case "z":
		return 2, nil
	}
	return 0, fmt.Errorf("viz: unknown variable %q (expected x, y or z)", name)
}

// ProjectionPlot renders the trajectory's projection onto a plane as a
// braille canvas, with a 10% margin around the data.
func ProjectionPlot(traj sim.Trajectory, plane Plane, width, height int) (string, error) {
	h, v, err := plane.Axes()
	if err != nil {
		return "", err
	}
	if traj.Len() == 0 {
		return "", fmt.Errorf("viz: empty trajectory")
	}

	min, max := traj.Bounds()
	spanH := max[h] - min[h]
	spanV := max[v] - min[v]
	if spanH == 0 {
		spanH = 1
	}
	if spanV == 0 {
		spanV = 1
	}
	loH := min[h] - spanH*0.1
	loV := min[v] - spanV*0.1
	spanH *= 1.2
	spanV *= 1.2

	canvas := NewCanvas(width, height)
	cw, ch := float64(width*2-1), float64(height*4-1)

	prevX, prevY, prevOK := 0, 0, false
	for i := 0; i < traj.Len(); i++ {
		s := traj.At(i)
		if !s.IsValid() {
			prevOK = false
			continue
		}
		x := int((s[h] - loH) / spanH * cw)
		y := int(ch - (s[v]-loV)/spanV*ch)
		if prevOK {
			canvas.DrawLine(prevX, prevY, x, y)
		} else {
			canvas.Set(x, y)
		}
		prevX, prevY, prevOK = x, y, true
	}

	names := [3]string{"X", "Y", "Z"}
	return canvas.String() + fmt.Sprintf("%s axis vs %s axis\n", names[h], names[v]), nil
}

// VariablePlot renders one coordinate against the iteration index. first
// limits the plot to the first n iterations; pass 0 for the whole series.
func VariablePlot(traj sim.Trajectory, variable string, first int) (string, error) {
	axis, err := AxisIndex(variable)
	if err != nil {
		return "", err
	}
	if traj.Len() == 0 {
		return "", fmt.Errorf("viz: empty trajectory")
	}

	data := traj.Column(axis)
	if first > 0 && first < len(data) {
		data = data[:first]
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs iteration", variable)),
	)
	return graph, nil
}

// SpectrumPlot renders a power spectrum as an ascii graph, showing the
// low-frequency quarter where attractor structure lives.
func SpectrumPlot(ps []float64, caption string) string {
	plotData := ps
	if len(ps) >= 8 {
		plotData = ps[:len(ps)/4]
	}
	return asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
