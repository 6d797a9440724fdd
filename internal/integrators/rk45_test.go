package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/evoarena/internal/dynamics"
)

// Exponential decay: x' = -x.
type decay struct{}

func (d *decay) Derive(x dynamics.State, t float64) dynamics.State {
	return dynamics.State{-x[0]}
}

func (d *decay) Dim() int { return 1 }

func TestRK45Accuracy(t *testing.T) {
	sys := &decay{}
	integ := NewRK45()

	x := dynamics.State{1.0}
	dt := 0.1
	steps := 50

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expected := math.Exp(-float64(steps) * dt)
	if math.Abs(x[0]-expected) > 1e-6 {
		t.Errorf("expected %.8f, got %.8f", expected, x[0])
	}
}

func TestRK45StepAdaptiveShrinksOnLargeError(t *testing.T) {
	sys := &decay{}
	integ := NewRK45()

	x, dtNew, err := integ.StepAdaptive(sys, dynamics.State{1.0}, 0, 2.0, 1e-12)
	if err != nil {
		t.Fatalf("StepAdaptive failed: %v", err)
	}
	if dtNew >= 2.0 {
		t.Errorf("expected step size to shrink from 2.0, got %f", dtNew)
	}
	if !x.IsValid() {
		t.Errorf("invalid state: %v", x)
	}
}

func TestRK45StepAdaptiveGrowsOnSmallError(t *testing.T) {
	sys := &decay{}
	integ := NewRK45()

	_, dtNew, err := integ.StepAdaptive(sys, dynamics.State{1.0}, 0, 0.001, 1e-3)
	if err != nil {
		t.Fatalf("StepAdaptive failed: %v", err)
	}
	if dtNew <= 0.001 {
		t.Errorf("expected step size to grow from 0.001, got %f", dtNew)
	}
	if dtNew > 0.001*10.0 {
		t.Errorf("growth must be capped at 10x, got %f", dtNew)
	}
}

func TestRK45AdaptiveAccuracy(t *testing.T) {
	sys := &decay{}
	integ := NewRK45()

	x := dynamics.State{1.0}
	t0 := 0.0
	dt := 0.1
	for t0 < 1.0 {
		step := math.Min(dt, 1.0-t0)
		var err error
		x, dt, err = integ.StepAdaptive(sys, x, t0, step, 1e-8)
		if err != nil {
			t.Fatalf("StepAdaptive failed: %v", err)
		}
		t0 += step
	}

	expected := math.Exp(-1.0)
	if math.Abs(x[0]-expected) > 1e-6 {
		t.Errorf("expected %.8f, got %.8f", expected, x[0])
	}
}

func TestRK45Oscillator(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK45()

	x := dynamics.State{1.0, 0.0}
	dt := 0.05
	steps := 200

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expected := math.Cos(float64(steps) * dt)
	if math.Abs(x[0]-expected) > 1e-5 {
		t.Errorf("expected %.8f, got %.8f", expected, x[0])
	}
}
