package render

import "errors"

var (
	// ErrInvalidGeometry is returned when a SampleSpec yields no output rows
	// or no output columns for an image.
	ErrInvalidGeometry = errors.New("invalid sample geometry")

	// ErrUnsupportedConfiguration is returned for conflicting or missing
	// rendering options.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
)
