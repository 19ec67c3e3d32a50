package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when decoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTruncatedStream is returned when the input ends mid-field or
	// mid-image
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrCorruptData is returned when the input is structurally invalid:
	// checksum mismatch, bad framing, undecodable compressed data
	ErrCorruptData = errors.New("corrupt data")

	// ErrUnsupportedFormat is returned when the input is valid but uses a
	// feature outside the supported surface
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrImageTooLarge is returned when the declared dimensions exceed the
	// configured maximum
	ErrImageTooLarge = errors.New("image too large")
)
