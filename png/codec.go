package png

import (
	"io"

	"github.com/cocosip/go-png-codec/codec"
)

// Codec implements the codec.Codec interface for PNG
type Codec struct{}

// NewCodec creates a new PNG codec
func NewCodec() *Codec {
	return &Codec{}
}

// Decode decodes a PNG datastream into 8-bit RGBA pixel data
func (c *Codec) Decode(r io.Reader, params codec.DecodeParams) (*codec.DecodeResult, error) {
	var opts DecodeOptions
	if params.Options != nil {
		po, ok := params.Options.(*DecodeOptions)
		if !ok {
			return nil, codec.ErrInvalidParameter
		}
		opts = *po
	}
	if params.MaxWidth > 0 {
		opts.MaxWidth = params.MaxWidth
	}
	if params.MaxHeight > 0 {
		opts.MaxHeight = params.MaxHeight
	}

	dec, err := NewDecoder(&opts)
	if err != nil {
		return nil, err
	}
	img := &RGBAImage{}
	header, meta, err := dec.Decode(r, img)
	if err != nil {
		return nil, err
	}

	res := &codec.DecodeResult{
		PixelData:     img.Pix,
		Width:         header.Width,
		Height:        header.Height,
		Components:    header.Channels(),
		BitDepth:      header.BitDepth,
		HorizontalDPI: meta.HorizontalDPI,
		VerticalDPI:   meta.VerticalDPI,
	}
	if len(meta.Texts) > 0 {
		res.Texts = make(map[string]string, len(meta.Texts))
		for _, t := range meta.Texts {
			res.Texts[t.Key] = t.Value
		}
	}
	return res, nil
}

// Sniff reports whether prefix starts with the PNG signature
func (c *Codec) Sniff(prefix []byte) bool {
	return len(prefix) >= len(pngHeader) && string(prefix[:len(pngHeader)]) == pngHeader
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return "png"
}

// MediaType returns the IANA media type
func (c *Codec) MediaType() string {
	return "image/png"
}

// init registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
