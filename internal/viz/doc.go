// Package viz provides terminal-based visualization for attractor
// trajectories.
//
// Rendering happens on a Braille-based pixel [Canvas]; trajectories can be
// shown as static 2D projections ([ProjectionPlot]), per-variable line
// charts ([VariablePlot]), or animated in 3D through a Bubble Tea TUI with
// an orbiting [Camera].
//
// # Key Bindings (live view)
//
//	Space - Pause/Resume
//	R     - Reset to initial state
//	Tab   - Cycle parameters, Up/Down to tune
//	x/y/z - Rotate camera (shift reverses)
//	+/-   - Zoom
package viz
