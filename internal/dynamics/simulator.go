// Package dynamics provides timepoint-sampled integration of
// autonomous ODE systems.
package dynamics

import (
	"context"
	"fmt"
	"math"
)

// Simulator integrates a system across an explicit timepoint sequence.
// It holds no run state: Sample is a pure function of its arguments.
type Simulator struct {
	integrator Integrator
}

func New(integrator Integrator) *Simulator {
	return &Simulator{integrator: integrator}
}

// Sample integrates sys from x0 and returns one state per timepoint,
// the first being x0 itself. Between consecutive timepoints the
// simulator takes cfg.Substeps fixed steps. If the system implements
// Projector, each step's result is projected before it is used.
func (s *Simulator) Sample(ctx context.Context, sys System, x0 State, timepoints []float64, cfg Config) (*Result, error) {
	if len(x0) != sys.Dim() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(x0), sys.Dim())
	}
	if len(timepoints) == 0 {
		return nil, ErrBadTimepoints
	}
	for i := 1; i < len(timepoints); i++ {
		if timepoints[i] <= timepoints[i-1] {
			return nil, fmt.Errorf("%w: index %d", ErrBadTimepoints, i)
		}
	}
	if cfg.Substeps <= 0 {
		cfg.Substeps = 1
	}

	var adaptive AdaptiveIntegrator
	if cfg.Adaptive {
		ai, ok := s.integrator.(AdaptiveIntegrator)
		if !ok {
			return nil, fmt.Errorf("%w: integrator has no error estimate", ErrNotAdaptive)
		}
		if cfg.Tolerance <= 0 {
			return nil, fmt.Errorf("tolerance must be positive, got %g", cfg.Tolerance)
		}
		adaptive = ai
	}

	proj, _ := sys.(Projector)

	result := &Result{
		Times:  make([]float64, 0, len(timepoints)),
		States: make([]State, 0, len(timepoints)),
	}

	x := x0.Clone()
	if proj != nil {
		x = proj.Project(x)
	}
	result.Times = append(result.Times, timepoints[0])
	result.States = append(result.States, x.Clone())

	step := 0
	for i := 1; i < len(timepoints); i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		t := timepoints[i-1]
		dt := (timepoints[i] - t) / float64(cfg.Substeps)

		if adaptive != nil {
			h := dt
			for timepoints[i]-t > 1e-12 {
				dt := math.Min(h, timepoints[i]-t)
				next, hNext, err := adaptive.StepAdaptive(sys, x, t, dt, cfg.Tolerance)
				if err != nil {
					return result, &StepError{Step: step, Time: t, Wrapped: err}
				}
				x = next
				if proj != nil {
					x = proj.Project(x)
				}
				t += dt
				h = hNext
				step++

				if cfg.ValidateState && !x.IsValid() {
					return result, &StepError{Step: step, Time: t, Wrapped: ErrInvalidState}
				}
			}
		} else {
			for k := 0; k < cfg.Substeps; k++ {
				x = s.integrator.Step(sys, x, t, dt)
				if proj != nil {
					x = proj.Project(x)
				}
				t += dt
				step++

				if cfg.ValidateState && !x.IsValid() {
					return result, &StepError{Step: step, Time: t, Wrapped: ErrInvalidState}
				}
			}
		}

		result.Times = append(result.Times, timepoints[i])
		result.States = append(result.States, x.Clone())
	}

	return result, nil
}
