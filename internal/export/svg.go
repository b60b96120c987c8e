// Package export renders trajectories into portable formats for use
// outside the terminal.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/attractor/internal/sim"
	"github.com/san-kum/attractor/internal/viz"
)

// TrajectoryToSVG renders the trajectory's projection onto a plane as an
// SVG polyline path.
func TrajectoryToSVG(traj sim.Trajectory, plane viz.Plane, width, height int, strokeColor string) (string, error) {
	h, v, err := plane.Axes()
	if err != nil {
		return "", err
	}
	if traj.Len() < 2 {
		return "", fmt.Errorf("export: trajectory too short to plot")
	}

	min, max := traj.Bounds()
	minX, maxX := min[h], max[h]
	minY, maxY := min[v], max[v]

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="0.6" d="M`,
		width, height, width, height, strokeColor))

	started := false
	for i := 0; i < traj.Len(); i++ {
		s := traj.At(i)
		if !s.IsValid() {
			continue
		}
		x := (s[h] - minX) / rangeX * float64(width)
		y := float64(height) - (s[v]-minY)/rangeY*float64(height)

		if !started {
			sb.WriteString(fmt.Sprintf("%.2f,%.2f", x, y))
			started = true
		} else {
			sb.WriteString(fmt.Sprintf(" L%.2f,%.2f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String(), nil
}

// CanvasToSVG converts a braille canvas to SVG, one dot per lit sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping, matching viz.Canvas.
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
