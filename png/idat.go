package png

import (
	"errors"
	"fmt"
	"io"
)

// Read presents the concatenation of all IDAT payloads as one continuous
// byte stream, minus the chunk framing. If the file carries
//
//	len0 IDAT xxx crc0 · len1 IDAT yy crc1 · ...
//
// the inflater reading through this method sees xxxyy. A request is served
// from the current IDAT only, so it comes back short at a chunk boundary;
// the next request then verifies the exhausted chunk's CRC and attaches the
// next IDAT before handing back any bytes, so chunk boundaries are
// invisible to the scanline engine even in the middle of a scanline.
func (d *decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for d.idatLength == 0 {
		// The current IDAT is exhausted; its CRC follows immediately.
		if err := d.verifyChecksum("IDAT"); err != nil {
			return 0, err
		}
		h, err := d.readChunkHeader()
		if err == io.EOF {
			return 0, fmt.Errorf("%w: stream ended with image data incomplete", ErrTruncatedStream)
		}
		if err != nil {
			return 0, err
		}
		if h.typ != "IDAT" {
			// IDAT chunks must be consecutive; anything else here means
			// the compressed stream was cut short.
			return 0, fmt.Errorf("%w: image data incomplete before %s chunk", ErrTruncatedStream, h.typ)
		}
		d.idatLength = h.length
	}
	n, err := d.r.Read(p[:min(len(p), int(d.idatLength))])
	d.crc.Write(p[:n])
	d.idatLength -= uint32(n)
	return n, err
}

// zlibErr maps a failure surfaced through the inflater onto the decoder's
// error kinds. Errors that originated in the adapter itself pass through.
func (d *decoder) zlibErr(err error) error {
	if errors.Is(err, ErrTruncatedStream) || errors.Is(err, ErrCorruptData) ||
		errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrImageTooLarge) {
		return err
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: not enough image data", ErrTruncatedStream)
	}
	return fmt.Errorf("%w: inflate: %v", ErrCorruptData, err)
}
