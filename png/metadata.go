package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Metadata collects the ancillary information observed while decoding.
type Metadata struct {
	// HorizontalDPI and VerticalDPI are derived from the pHYs chunk.
	// Zero when the stream carries none.
	HorizontalDPI float64
	VerticalDPI   float64

	// Texts are the tEXt key/value pairs, in file order. Empty when the
	// stream carries none or IgnoreMetadata is set.
	Texts []TextEntry
}

// TextEntry is one tEXt key/value pair.
type TextEntry struct {
	Key   string
	Value string
}

const inchesPerMetre = 39.3700787

// parsePLTE stores the palette: up to 256 RGB triplets. The palette is
// copied out of the pooled chunk buffer because it outlives the handler.
func (d *decoder) parsePLTE(h chunkHeader) error {
	if d.stage != dsSeenIHDR {
		return fmt.Errorf("%w: misplaced PLTE", ErrCorruptData)
	}
	if d.header.ColorType == ctGrayscale || d.header.ColorType == ctGrayscaleAlpha {
		return fmt.Errorf("%w: PLTE in a grayscale image", ErrCorruptData)
	}
	if h.length == 0 || h.length%3 != 0 || h.length > 3*256 {
		return fmt.Errorf("%w: bad PLTE length %d", ErrCorruptData, h.length)
	}
	buf, err := d.readChunkData(h)
	if err != nil {
		return err
	}
	defer d.pool.put(buf)
	d.palette = append([]byte(nil), buf...)
	if err := d.verifyChecksum(h.typ); err != nil {
		return err
	}
	d.stage = dsSeenPLTE
	return nil
}

// parseTRNS stores per-palette-entry alpha. Entries beyond the table are
// fully opaque. Grayscale and truecolor transparency are outside the
// supported surface; their tRNS chunks are skipped.
func (d *decoder) parseTRNS(h chunkHeader) error {
	if d.stage >= dsSeenIDAT {
		return d.skipMisplaced(h)
	}
	if !d.paletted() {
		if err := d.skipChunkData(h.length, h.typ); err != nil {
			return err
		}
		return d.verifyChecksum(h.typ)
	}
	if d.palette == nil {
		return fmt.Errorf("%w: tRNS before PLTE", ErrCorruptData)
	}
	if int(h.length) > len(d.palette)/3 {
		return fmt.Errorf("%w: bad tRNS length %d", ErrCorruptData, h.length)
	}
	buf, err := d.readChunkData(h)
	if err != nil {
		return err
	}
	defer d.pool.put(buf)
	d.paletteAlpha = append([]byte(nil), buf...)
	return d.verifyChecksum(h.typ)
}

// parsePHYS converts the two pixels-per-metre fields to dots per inch.
// The unit specifier byte is currently ignored.
func (d *decoder) parsePHYS(h chunkHeader) error {
	if d.stage >= dsSeenIDAT {
		return d.skipMisplaced(h)
	}
	if h.length != 9 {
		return fmt.Errorf("%w: bad pHYs length %d", ErrCorruptData, h.length)
	}
	buf, err := d.readChunkData(h)
	if err != nil {
		return err
	}
	defer d.pool.put(buf)
	d.meta.HorizontalDPI = float64(binary.BigEndian.Uint32(buf[0:4])) / inchesPerMetre
	d.meta.VerticalDPI = float64(binary.BigEndian.Uint32(buf[4:8])) / inchesPerMetre
	return d.verifyChecksum(h.typ)
}

// parseTEXT decodes a keyword, a NUL separator and a value using the
// configured text encoding. With IgnoreMetadata set, the payload is
// discarded without decoding (its CRC is still validated).
func (d *decoder) parseTEXT(h chunkHeader) error {
	if d.opts.IgnoreMetadata {
		if err := d.skipChunkData(h.length, h.typ); err != nil {
			return err
		}
		return d.verifyChecksum(h.typ)
	}
	buf, err := d.readChunkData(h)
	if err != nil {
		return err
	}
	defer d.pool.put(buf)
	sep := bytes.IndexByte(buf, 0)
	if sep < 0 {
		return fmt.Errorf("%w: tEXt without separator", ErrCorruptData)
	}
	dec := d.opts.textDecoder()
	key, err := dec.Bytes(buf[:sep])
	if err != nil {
		return fmt.Errorf("%w: undecodable tEXt keyword: %v", ErrCorruptData, err)
	}
	value, err := dec.Bytes(buf[sep+1:])
	if err != nil {
		return fmt.Errorf("%w: undecodable tEXt value: %v", ErrCorruptData, err)
	}
	d.meta.Texts = append(d.meta.Texts, TextEntry{Key: string(key), Value: string(value)})
	return d.verifyChecksum(h.typ)
}

// skipMisplaced handles an ancillary chunk that arrived after image data
// began: skipped under relaxed ordering, an error otherwise.
func (d *decoder) skipMisplaced(h chunkHeader) error {
	if !d.opts.RelaxedChunkOrder {
		return fmt.Errorf("%w: %s chunk after image data", ErrCorruptData, h.typ)
	}
	if err := d.skipChunkData(h.length, h.typ); err != nil {
		return err
	}
	return d.verifyChecksum(h.typ)
}
