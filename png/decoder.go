package png

import (
	"fmt"
	"hash"
	"hash/crc32"
	"io"
)

// Decoder decodes PNG datastreams. A Decoder carries only configuration
// and a buffer pool; it may be reused for any number of sequential decodes
// and no state survives from one image to the next.
type Decoder struct {
	opts DecodeOptions
	pool bufferPool
}

// NewDecoder creates a Decoder. A nil opts selects the defaults.
func NewDecoder(opts *DecodeOptions) (*Decoder, error) {
	d := &Decoder{}
	if opts != nil {
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		d.opts = *opts
	}
	return d, nil
}

// Decode reads one PNG datastream from r and delivers its pixels to sink.
// The returned header and metadata describe the decoded image. All errors
// are terminal and match one of ErrTruncatedStream, ErrCorruptData,
// ErrUnsupportedFormat, ErrImageTooLarge or ErrMissingEnd under errors.Is.
func (dec *Decoder) Decode(r io.Reader, sink PixelSink) (*Header, *Metadata, error) {
	d := &decoder{
		r:    r,
		crc:  crc32.NewIEEE(),
		opts: &dec.opts,
		pool: &dec.pool,
		sink: sink,
	}
	if err := d.decode(); err != nil {
		return nil, nil, err
	}
	return &d.header, &d.meta, nil
}

// Decode decodes a PNG datastream with default options into an RGBAImage.
func Decode(r io.Reader) (*RGBAImage, error) {
	dec, err := NewDecoder(nil)
	if err != nil {
		return nil, err
	}
	img := &RGBAImage{}
	if _, _, err := dec.Decode(r, img); err != nil {
		return nil, err
	}
	return img, nil
}

// decoder holds the state of one decode. It is created on decode entry and
// discarded on exit.
type decoder struct {
	r    io.Reader
	crc  hash.Hash32
	opts *DecodeOptions
	pool *bufferPool
	sink PixelSink

	header Header
	cb     int
	stage  int

	channels     int // samples per pixel
	bitsPerPixel int
	filterBPP    int // filter distance in whole bytes

	palette      []byte // RGB triplets from PLTE
	paletteAlpha []byte // per-entry alpha from tRNS
	meta         Metadata

	idatLength uint32 // unread payload bytes of the current IDAT
	tmp        [768]byte
}

// decode runs the chunk loop until IEND.
func (d *decoder) decode() error {
	if err := d.readSignature(); err != nil {
		return err
	}
	for d.stage != dsSeenIEND {
		h, err := d.readChunkHeader()
		if err == io.EOF {
			return ErrMissingEnd
		}
		if err != nil {
			return err
		}
		if err := d.dispatchChunk(h); err != nil {
			return err
		}
	}
	return nil
}

// dispatchChunk routes one chunk to its handler. Unknown ancillary chunks
// are skipped by length with their CRC still validated; unknown critical
// chunks cannot be skipped safely.
func (d *decoder) dispatchChunk(h chunkHeader) error {
	if d.stage == dsStart && h.typ != "IHDR" {
		return fmt.Errorf("%w: %s chunk before IHDR", ErrCorruptData, h.typ)
	}
	switch h.typ {
	case "IHDR":
		return d.parseIHDR(h)
	case "PLTE":
		return d.parsePLTE(h)
	case "tRNS":
		return d.parseTRNS(h)
	case "pHYs":
		return d.parsePHYS(h)
	case "tEXt":
		return d.parseTEXT(h)
	case "IDAT":
		return d.parseIDAT(h)
	case "IEND":
		return d.parseIEND(h)
	default:
		if h.critical() {
			return fmt.Errorf("%w: unknown critical chunk %s", ErrUnsupportedFormat, h.typ)
		}
		if err := d.skipChunkData(h.length, h.typ); err != nil {
			return err
		}
		return d.verifyChecksum(h.typ)
	}
}

// parseIDAT decodes the whole image on the first IDAT chunk: the scanline
// engine pulls this chunk's payload, and any number of subsequent IDAT
// payloads, through the frame adapter. IDAT chunks arriving after the
// image is complete are discarded.
func (d *decoder) parseIDAT(h chunkHeader) error {
	switch d.stage {
	case dsSeenIHDR, dsSeenPLTE:
		if d.paletted() && d.palette == nil {
			return fmt.Errorf("%w: IDAT before PLTE", ErrCorruptData)
		}
		d.stage = dsSeenIDAT
		d.idatLength = h.length
		if err := d.decodeImage(); err != nil {
			return err
		}
		// The inflater stops at the zlib trailer; drain whatever is left
		// of the chunk it was reading so its CRC can be checked.
		if err := d.skipChunkData(d.idatLength, h.typ); err != nil {
			return err
		}
		d.idatLength = 0
		return d.verifyChecksum(h.typ)
	case dsSeenIDAT:
		if err := d.skipChunkData(h.length, h.typ); err != nil {
			return err
		}
		return d.verifyChecksum(h.typ)
	default:
		return fmt.Errorf("%w: misplaced IDAT", ErrCorruptData)
	}
}

// parseIEND finishes the stream.
func (d *decoder) parseIEND(h chunkHeader) error {
	if d.stage != dsSeenIDAT {
		return fmt.Errorf("%w: IEND before image data", ErrCorruptData)
	}
	if h.length != 0 {
		return fmt.Errorf("%w: bad IEND length %d", ErrCorruptData, h.length)
	}
	if err := d.verifyChecksum(h.typ); err != nil {
		return err
	}
	d.stage = dsSeenIEND
	return nil
}
