package png

import (
	"errors"

	"github.com/cocosip/go-png-codec/codec"
)

// The decoder reports failures through five terminal error kinds. Four are
// codec-neutral and shared with the rest of the module; callers match them
// with errors.Is.
var (
	// ErrTruncatedStream is returned when the input ends mid-field,
	// mid-chunk, or with a scanline partially filled and no IDATs left
	ErrTruncatedStream = codec.ErrTruncatedStream

	// ErrCorruptData is returned on checksum mismatches, unknown filter
	// bytes, inflate failures and chunk ordering violations
	ErrCorruptData = codec.ErrCorruptData

	// ErrUnsupportedFormat is returned for disallowed color type and bit
	// depth combinations, nonzero filter methods, unknown interlace
	// methods and unknown critical chunks
	ErrUnsupportedFormat = codec.ErrUnsupportedFormat

	// ErrImageTooLarge is returned when the declared width or height
	// exceeds the configured maximum
	ErrImageTooLarge = codec.ErrImageTooLarge

	// ErrMissingEnd is returned when the stream ends cleanly at a chunk
	// boundary before an IEND chunk was seen
	ErrMissingEnd = errors.New("missing IEND chunk")
)
