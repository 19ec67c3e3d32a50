package png

import (
	"encoding/binary"
	"fmt"
	"io"
)

// chunkHeader is the 8-byte record that starts every chunk. The payload and
// trailing CRC are consumed separately: most handlers pull the payload into
// a pooled buffer, while IDAT payloads are streamed through the zlib frame
// adapter without ever being buffered whole (see idat.go).
type chunkHeader struct {
	length uint32
	typ    string
}

// critical reports whether the chunk must be understood to decode the
// image. Ancillary chunks have a lowercase first type byte.
func (h chunkHeader) critical() bool {
	return h.typ[0] >= 'A' && h.typ[0] <= 'Z'
}

// readSignature consumes the 8-byte PNG signature. It is only compared
// against the magic when the VerifySignature option is set; callers
// normally sniff the stream before handing it to the decoder.
func (d *decoder) readSignature() error {
	if _, err := io.ReadFull(d.r, d.tmp[:8]); err != nil {
		return fmt.Errorf("%w: signature", ErrTruncatedStream)
	}
	if d.opts.VerifySignature && string(d.tmp[:8]) != pngHeader {
		return fmt.Errorf("%w: not a PNG signature", ErrCorruptData)
	}
	return nil
}

// readChunkHeader reads a chunk's length and type and primes the running
// CRC with the type bytes.
//
// A clean EOF before the first length byte is reported as io.EOF: the
// stream is allowed to end only between chunks, and whether that end is
// legal (IEND already seen) is the caller's call. Reading 1 to 7 bytes of
// the record is always a truncation.
func (d *decoder) readChunkHeader() (chunkHeader, error) {
	if _, err := io.ReadFull(d.r, d.tmp[:8]); err != nil {
		if err == io.EOF {
			return chunkHeader{}, io.EOF
		}
		return chunkHeader{}, fmt.Errorf("%w: chunk header", ErrTruncatedStream)
	}
	length := binary.BigEndian.Uint32(d.tmp[:4])
	if length&0x80000000 != 0 {
		// Lengths are 31-bit; a set high bit is never end-of-stream.
		return chunkHeader{}, fmt.Errorf("%w: chunk length %#x exceeds 31 bits", ErrCorruptData, length)
	}
	h := chunkHeader{length: length, typ: string(d.tmp[4:8])}
	d.crc.Reset()
	d.crc.Write(d.tmp[4:8])
	return h, nil
}

// readChunkData pulls the whole payload into a pooled buffer and feeds the
// running CRC. Ownership of the buffer passes to the caller, who must
// return it to the pool when the handler is done with it.
func (d *decoder) readChunkData(h chunkHeader) ([]byte, error) {
	buf := d.pool.get(int(h.length))
	if _, err := io.ReadFull(d.r, buf); err != nil {
		d.pool.put(buf)
		return nil, fmt.Errorf("%w: %s payload", ErrTruncatedStream, h.typ)
	}
	d.crc.Write(buf)
	return buf, nil
}

// skipChunkData discards length payload bytes while still feeding the
// running CRC, so the trailing checksum of a skipped chunk can be verified.
func (d *decoder) skipChunkData(length uint32, typ string) error {
	for length > 0 {
		n := min(len(d.tmp), int(length))
		if _, err := io.ReadFull(d.r, d.tmp[:n]); err != nil {
			return fmt.Errorf("%w: %s payload", ErrTruncatedStream, typ)
		}
		d.crc.Write(d.tmp[:n])
		length -= uint32(n)
	}
	return nil
}

// verifyChecksum consumes the 4-byte chunk CRC and compares it against the
// running CRC-32 of type and data.
func (d *decoder) verifyChecksum(typ string) error {
	if _, err := io.ReadFull(d.r, d.tmp[:4]); err != nil {
		return fmt.Errorf("%w: %s checksum", ErrTruncatedStream, typ)
	}
	if binary.BigEndian.Uint32(d.tmp[:4]) != d.crc.Sum32() {
		return fmt.Errorf("%w: invalid checksum for %s chunk", ErrCorruptData, typ)
	}
	return nil
}
