package analyze

import (
	"fmt"

	"github.com/san-kum/evoarena/internal/dynamics"
	"github.com/san-kum/evoarena/internal/integrators"
)

// Registry maps integrator names to constructors.
type Registry struct {
	integrators map[string]func() dynamics.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{integrators: make(map[string]func() dynamics.Integrator)}

	r.integrators["euler"] = func() dynamics.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamics.Integrator { return integrators.NewRK4() }
	r.integrators["rk45"] = func() dynamics.Integrator { return integrators.NewRK45() }

	return r
}

func (r *Registry) GetIntegrator(name string) (dynamics.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	return names
}
