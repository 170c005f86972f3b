package eco

import "errors"

// Domain errors for parameter validation at the simulation boundary.
var (
	// ErrParameterBounds indicates a parameter value outside its valid range.
	ErrParameterBounds = errors.New("eco: parameter out of valid bounds")

	// ErrUnknownParameter indicates a parameter name with no matching field.
	ErrUnknownParameter = errors.New("eco: unknown parameter")
)
