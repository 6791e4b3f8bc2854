package asciiart

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive target width or a
	// resize that would produce zero output rows.
	ErrInvalidDimension = errors.New("invalid output dimension")

	// ErrEmptyGradient indicates a character gradient with no characters.
	ErrEmptyGradient = errors.New("gradient is empty")

	// ErrWideRune indicates a gradient character that occupies more than
	// one terminal cell and would break column alignment.
	ErrWideRune = errors.New("gradient character wider than one cell")

	// ErrDecode indicates the input image could not be decoded.
	ErrDecode = errors.New("could not decode image")
)
