package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidationFailed wraps the field errors reported by the struct
	// validator.
	ErrValidationFailed = errors.New("validation failed")
)
