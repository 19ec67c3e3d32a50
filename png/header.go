package png

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Header carries the parsed IHDR fields.
type Header struct {
	Width     int   // Image width in pixels
	Height    int   // Image height in pixels
	BitDepth  int   // Bits per sample (1, 2, 4 or 8)
	ColorType uint8 // One of the five PNG color types
	Interlace uint8 // 0 = none, 1 = Adam7
}

// Channels returns the number of samples per pixel for the color type.
func (h *Header) Channels() int {
	switch h.ColorType {
	case ctGrayscaleAlpha:
		return 2
	case ctTrueColor:
		return 3
	case ctTrueColorAlpha:
		return 4
	default: // grayscale and paletted carry one sample per pixel
		return 1
	}
}

// Interlaced reports whether the image uses Adam7 interlacing.
func (h *Header) Interlaced() bool {
	return h.Interlace == itAdam7
}

// parseIHDR parses and validates the 13-byte IHDR record. IHDR must be the
// first chunk of the stream.
func (d *decoder) parseIHDR(h chunkHeader) error {
	if d.stage != dsStart {
		return fmt.Errorf("%w: duplicate IHDR", ErrCorruptData)
	}
	if h.length != 13 {
		return fmt.Errorf("%w: bad IHDR length %d", ErrCorruptData, h.length)
	}
	if _, err := io.ReadFull(d.r, d.tmp[:13]); err != nil {
		return fmt.Errorf("%w: IHDR payload", ErrTruncatedStream)
	}
	d.crc.Write(d.tmp[:13])

	w := int32(binary.BigEndian.Uint32(d.tmp[0:4]))
	h32 := int32(binary.BigEndian.Uint32(d.tmp[4:8]))
	depth := int(d.tmp[8])
	colorType := d.tmp[9]
	compression := d.tmp[10]
	filterMethod := d.tmp[11]
	interlace := d.tmp[12]

	if w <= 0 || h32 <= 0 {
		return fmt.Errorf("%w: non-positive dimension %dx%d", ErrCorruptData, w, h32)
	}
	maxWidth, maxHeight := d.opts.maxDimensions()
	if int(w) > maxWidth || int(h32) > maxHeight {
		return fmt.Errorf("%w: %dx%d exceeds limit %dx%d", ErrImageTooLarge, w, h32, maxWidth, maxHeight)
	}
	if compression != 0 {
		return fmt.Errorf("%w: compression method %d", ErrUnsupportedFormat, compression)
	}
	if filterMethod != 0 {
		return fmt.Errorf("%w: filter method %d", ErrUnsupportedFormat, filterMethod)
	}
	if interlace != itNone && interlace != itAdam7 {
		return fmt.Errorf("%w: interlace method %d", ErrUnsupportedFormat, interlace)
	}

	d.cb = cbInvalid
	switch colorType {
	case ctGrayscale:
		switch depth {
		case 1:
			d.cb = cbG1
		case 2:
			d.cb = cbG2
		case 4:
			d.cb = cbG4
		case 8:
			d.cb = cbG8
		}
	case ctTrueColor:
		if depth == 8 {
			d.cb = cbTC8
		}
	case ctPaletted:
		switch depth {
		case 1:
			d.cb = cbP1
		case 2:
			d.cb = cbP2
		case 4:
			d.cb = cbP4
		case 8:
			d.cb = cbP8
		}
	case ctGrayscaleAlpha:
		if depth == 8 {
			d.cb = cbGA8
		}
	case ctTrueColorAlpha:
		if depth == 8 {
			d.cb = cbTCA8
		}
	default:
		return fmt.Errorf("%w: color type %d", ErrUnsupportedFormat, colorType)
	}
	if d.cb == cbInvalid {
		return fmt.Errorf("%w: bit depth %d with color type %d", ErrUnsupportedFormat, depth, colorType)
	}

	d.header = Header{
		Width:     int(w),
		Height:    int(h32),
		BitDepth:  depth,
		ColorType: colorType,
		Interlace: interlace,
	}
	d.channels = d.header.Channels()
	d.bitsPerPixel = depth * d.channels
	// PNG filtering works on whole bytes; sub-8-bit pixels filter with a
	// one-byte distance.
	d.filterBPP = max(1, d.bitsPerPixel/8)

	if err := d.verifyChecksum(h.typ); err != nil {
		return err
	}
	d.stage = dsSeenIHDR
	d.sink.Allocate(d.header.Width, d.header.Height)
	return nil
}

// paletted reports whether the image indexes into a PLTE palette.
func (d *decoder) paletted() bool {
	return d.header.ColorType == ctPaletted
}
