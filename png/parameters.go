package png

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/cocosip/go-png-codec/codec"
)

// DefaultMaxDimension bounds image width and height when the caller does
// not configure a limit.
const DefaultMaxDimension = 1 << 24

// Ensure DecodeOptions implements codec.Options
var _ codec.Options = (*DecodeOptions)(nil)

// DecodeOptions contains options for the PNG decoder. The zero value is
// ready to use.
type DecodeOptions struct {
	// MaxWidth and MaxHeight bound the accepted image dimensions in
	// pixels. Zero means DefaultMaxDimension. A header declaring larger
	// dimensions fails with ErrImageTooLarge.
	MaxWidth  int
	MaxHeight int

	// IgnoreMetadata drops tEXt chunks without decoding them. The chunk
	// CRCs are still validated.
	IgnoreMetadata bool

	// TextEncoding decodes tEXt keywords and values. Latin-1 when nil.
	// It does not affect byte-level decoding anywhere else.
	TextEncoding *encoding.Decoder

	// VerifySignature checks the 8-byte PNG signature instead of skipping
	// it. Callers that have already sniffed the stream leave this off.
	VerifySignature bool

	// RelaxedChunkOrder tolerates misplaced ancillary chunks by skipping
	// them instead of failing. Critical chunk ordering (IHDR first, PLTE
	// before IDAT) is enforced regardless. Decoding stops at IEND, so
	// bytes after it are never read.
	RelaxedChunkOrder bool
}

// NewDecodeOptions creates a new DecodeOptions with default values
func NewDecodeOptions() *DecodeOptions {
	return &DecodeOptions{}
}

// Validate checks if the options are valid
func (o *DecodeOptions) Validate() error {
	if o.MaxWidth < 0 || o.MaxHeight < 0 {
		return codec.ErrInvalidParameter
	}
	return nil
}

// maxDimensions returns the configured limits with defaults applied.
func (o *DecodeOptions) maxDimensions() (maxWidth, maxHeight int) {
	maxWidth, maxHeight = o.MaxWidth, o.MaxHeight
	if maxWidth == 0 {
		maxWidth = DefaultMaxDimension
	}
	if maxHeight == 0 {
		maxHeight = DefaultMaxDimension
	}
	return maxWidth, maxHeight
}

// textDecoder returns the configured text decoder, defaulting to Latin-1.
func (o *DecodeOptions) textDecoder() *encoding.Decoder {
	if o.TextEncoding != nil {
		return o.TextEncoding
	}
	return charmap.ISO8859_1.NewDecoder()
}
