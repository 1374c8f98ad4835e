package unit

import "errors"

// Errors of the kernel. ErrMissingInput and ErrOutOfRangeParameter are always
// recovered locally and only reported through hooks.
var (
	// ErrMissingInput means an input or a parameter has no supplied value
	// and the declared default was used.
	ErrMissingInput = errors.New("missing input")

	// ErrOutOfRangeParameter means a parameter value was clamped to its
	// declared range.
	ErrOutOfRangeParameter = errors.New("parameter out of range")

	// ErrNumericalInstability means a state variable left its physical
	// bounds or became non-finite.
	ErrNumericalInstability = errors.New("numerical instability")

	// ErrConfigurationHazard means a configuration violates the stability
	// limits of the explicit schemes.
	ErrConfigurationHazard = errors.New("configuration hazard")

	// ErrUnknownUnit means no unit has the requested name.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnknownParameter means the unit declares no such parameter.
	ErrUnknownParameter = errors.New("unknown parameter")

	// ErrUnknownVariable means the unit declares no such input or output.
	ErrUnknownVariable = errors.New("unknown variable")
)
