package operator

import "errors"

var (
	// ErrBadParameter indicates the operator parameter n is below 1.
	ErrBadParameter = errors.New("operator: parameter n must be >= 1")
	// ErrUnknownVariant indicates Options.Variant is not Compact or Extended.
	ErrUnknownVariant = errors.New("operator: unknown variant")
	// ErrOutOfRange indicates a row or column index is outside [0, Dim).
	ErrOutOfRange = errors.New("operator: index out of range")
)
