package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/attractor/internal/attractor"
	"github.com/san-kum/attractor/internal/integrators"
	"github.com/san-kum/attractor/internal/ode"
)

func TestLyapunovLorenzChaotic(t *testing.T) {
	if testing.Short() {
		t.Skip("long integration")
	}

	sys, err := attractor.New(attractor.TypeLorenz, []float64{10, 28, 8.0 / 3.0})
	if err != nil {
		t.Fatalf("building lorenz: %v", err)
	}

	lambda := LyapunovExponent(sys, integrators.NewRK4(), ode.State{1, 1, 1}, 0.01, 5000, 1e-8)

	// The classical Lorenz exponent is ~0.9; anything clearly positive
	// confirms exponential divergence.
	if lambda < 0.3 {
		t.Errorf("expected positive lyapunov exponent for chaotic lorenz, got %f", lambda)
	}
}

func TestLyapunovStableFixedPoint(t *testing.T) {
	// Heavily damped Thomas contracts to the origin; the exponent must
	// not be positive.
	sys, err := attractor.New(attractor.TypeThomas, []float64{2.0})
	if err != nil {
		t.Fatalf("building thomas: %v", err)
	}

	lambda := LyapunovExponent(sys, integrators.NewRK4(), ode.State{0.1, 0.1, 0.1}, 0.01, 5000, 1e-8)
	if lambda > 0 {
		t.Errorf("expected non-positive exponent for damped thomas, got %f", lambda)
	}
}

func TestLyapunovDegenerateInputs(t *testing.T) {
	sys, _ := attractor.New(attractor.TypeLorenz, []float64{10, 28, 8.0 / 3.0})
	integ := integrators.NewEuler()

	if got := LyapunovExponent(sys, integ, ode.State{1, 1, 1}, 0, 100, 1e-8); got != 0 {
		t.Errorf("expected 0 for zero dt, got %f", got)
	}
	if got := LyapunovExponent(sys, integ, ode.State{1, 1, 1}, 0.01, 0, 1e-8); got != 0 {
		t.Errorf("expected 0 for zero steps, got %f", got)
	}
}

func TestPowerSpectrumSinusoid(t *testing.T) {
	const n = 256
	data := make([]float64, n)
	// 16 cycles over the window; the peak must land on bin 16.
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 16 * float64(i) / n)
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] {
			peak = i
		}
	}
	if peak != 16 {
		t.Errorf("expected spectral peak at bin 16, got %d", peak)
	}
}

func TestPowerSpectrumPadsToPowerOfTwo(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i % 7)
	}

	// Must not panic on non-power-of-two input.
	ps := PowerSpectrum(data)
	if len(ps) != 64 {
		t.Errorf("expected 64 bins after padding to 128, got %d", len(ps))
	}

	if ps := PowerSpectrum([]float64{1, 2, 3}); len(ps) != 2 {
		t.Errorf("expected 2 bins after padding to 4, got %d", len(ps))
	}
}
