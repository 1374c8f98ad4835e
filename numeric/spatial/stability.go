package spatial

import (
	"errors"
	"fmt"
)

// DiffusionLimit is the stability limit of D·Δt/dz² for the explicit 3-point
// Laplacian.
const DiffusionLimit = 0.5

// ErrUnstable is returned when a discretization violates the explicit
// stability limits.
var ErrUnstable = errors.New("explicit scheme is unstable")

// Stability holds the dimensionless numbers that govern the stability of the
// explicit convection-diffusion update on one field.
type Stability struct {
	// Diffusion is D·Δt/dz².
	Diffusion float64

	// Courant is |u|·Δt/dz.
	Courant float64
}

// StabilityOf computes the stability numbers of a field with diffusivity d
// and velocity u, updated with step dt on grid g.
func StabilityOf(g Grid, dt, d, u float64) Stability {
	dz := g.Dz()
	if u < 0 {
		u = -u
	}

	return Stability{
		Diffusion: d * dt / (dz * dz),
		Courant:   u * dt / dz,
	}
}

// Check returns an error wrapping ErrUnstable if D·Δt/dz² >= 0.5, or if the
// combined upwind limit 2·D·Δt/dz² + u·Δt/dz > 1 is exceeded.
func (s Stability) Check() error {
	if s.Diffusion >= DiffusionLimit {
		return fmt.Errorf("%w: diffusion number %.4g >= %g",
			ErrUnstable, s.Diffusion, DiffusionLimit)
	}

	if 2*s.Diffusion+s.Courant > 1 {
		return fmt.Errorf("%w: 2*%.4g + %.4g > 1",
			ErrUnstable, s.Diffusion, s.Courant)
	}

	return nil
}

// Worst returns the element-wise maximum of the stability numbers.
func Worst(ss ...Stability) Stability {
	w := Stability{}

	for _, s := range ss {
		if s.Diffusion > w.Diffusion {
			w.Diffusion = s.Diffusion
		}

		if s.Courant > w.Courant {
			w.Courant = s.Courant
		}
	}

	return w
}

// Rescale returns the node interval count and the sub-step count that keep a
// discretization stable and keep the simulated time per tick when the
// resolution is refined by a factor k: the grid gains a factor k in
// intervals, so the sub-step size must shrink by k² and the number of
// sub-steps must grow by k².
func Rescale(intervals, subSteps, k int) (newIntervals, newSubSteps int) {
	if k < 1 {
		panic(fmt.Sprintf("refinement factor must be at least 1, got %d", k))
	}

	return intervals * k, subSteps * k * k
}
