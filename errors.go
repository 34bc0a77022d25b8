package haircolor

import "errors"

// Errors reported by the recoloring pipeline. Stage failures are recoverable:
// callers test them with errors.Is and show "nothing to show" instead.
var (
	// ErrMissingInput is returned when an operation needs a photo, matte,
	// color chart or lightness statistics that have not been supplied.
	ErrMissingInput = errors.New("haircolor: missing input")

	// ErrNoRegion is returned when the capture produced no hair matte.
	// It is always reported wrapped in ErrMissingInput.
	ErrNoRegion = errors.New("haircolor: no hair region detected")

	// ErrOutOfBounds is returned when a sampled pixel lies outside the image.
	ErrOutOfBounds = errors.New("haircolor: coordinates out of bounds")

	// ErrResourceUnavailable is returned when a resource a render needs,
	// such as the diagnostic label font, cannot be loaded.
	ErrResourceUnavailable = errors.New("haircolor: resource unavailable")
)
