package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func validSmallPNG(t *testing.T) []byte {
	return buildPNG(t, 2, 2, 8, ctGrayscale, itNone, nil,
		[]byte{0, 10, 20, 0, 30, 40})
}

func TestChunkCRCMismatch(t *testing.T) {
	data := buildPNG(t, 1, 1, 8, ctGrayscale, itNone,
		[][2][]byte{{[]byte("pHYs"), physData(2835, 2835)}},
		[]byte{ftNone, 0})

	// Flip one bit inside the pHYs payload without touching its CRC. The
	// chunk starts right after the 8-byte signature and the 25-byte IHDR.
	idx := bytes.Index(data, []byte("pHYs"))
	if idx < 0 {
		t.Fatal("pHYs chunk not found")
	}
	data[idx+4] ^= 0x01

	_, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("decode error = %v, want ErrCorruptData", err)
	}
}

func TestSkippedAncillaryChunkCRCIsChecked(t *testing.T) {
	// An unknown ancillary chunk is skipped by length, but a bad CRC on
	// it still fails the decode.
	var b bytes.Buffer
	b.WriteString(pngHeader)
	writeChunk(&b, "IHDR", ihdrData(1, 1, 8, ctGrayscale, itNone))
	writeChunk(&b, "eXIf", []byte{1, 2, 3, 4})
	writeChunk(&b, "IDAT", deflate(t, []byte{0, 0}))
	writeChunk(&b, "IEND", nil)
	data := b.Bytes()

	if _, err := Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode with healthy eXIf: %v", err)
	}

	idx := bytes.Index(data, []byte("eXIf"))
	data[idx+4] ^= 0x80
	_, err := Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("decode error = %v, want ErrCorruptData", err)
	}
}

func TestUnknownCriticalChunk(t *testing.T) {
	var b bytes.Buffer
	b.WriteString(pngHeader)
	writeChunk(&b, "IHDR", ihdrData(1, 1, 8, ctGrayscale, itNone))
	writeChunk(&b, "ABCD", []byte{1, 2, 3})
	writeChunk(&b, "IDAT", deflate(t, []byte{0, 0}))
	writeChunk(&b, "IEND", nil)

	_, err := Decode(bytes.NewReader(b.Bytes()))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("decode error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestChunkLengthHighBitSet(t *testing.T) {
	var b bytes.Buffer
	b.WriteString(pngHeader)
	writeChunk(&b, "IHDR", ihdrData(1, 1, 8, ctGrayscale, itNone))
	var bogus [8]byte
	binary.BigEndian.PutUint32(bogus[0:4], 0x80000004)
	copy(bogus[4:8], "eXIf")
	b.Write(bogus[:])

	_, err := Decode(bytes.NewReader(b.Bytes()))
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("decode error = %v, want ErrCorruptData", err)
	}
}

func TestTruncatedStream(t *testing.T) {
	data := validSmallPNG(t)

	tests := []struct {
		name string
		cut  int // bytes kept from the front
		want error
	}{
		{"mid signature", 4, ErrTruncatedStream},
		{"mid chunk length", 8 + 2, ErrTruncatedStream},
		{"mid chunk type", 8 + 6, ErrTruncatedStream},
		{"mid IHDR payload", 8 + 8 + 5, ErrTruncatedStream},
		{"mid IHDR checksum", 8 + 8 + 13 + 2, ErrTruncatedStream},
		{"clean end after IHDR", 8 + 25, ErrMissingEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(data[:tt.cut]))
			if !errors.Is(err, tt.want) {
				t.Fatalf("decode error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestVerifySignature(t *testing.T) {
	data := validSmallPNG(t)
	data[0] = 'X'

	// Default mode skips the signature without looking at it.
	if _, err := Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("default decode: %v", err)
	}

	dec, err := NewDecoder(&DecodeOptions{VerifySignature: true})
	if err != nil {
		t.Fatal(err)
	}
	_, _, err = dec.Decode(bytes.NewReader(data), &RGBAImage{})
	if !errors.Is(err, ErrCorruptData) {
		t.Fatalf("strict decode error = %v, want ErrCorruptData", err)
	}
}

func TestGarbageAfterIENDIsIgnored(t *testing.T) {
	data := append(validSmallPNG(t), "trailing garbage"...)
	if _, err := Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode: %v", err)
	}
}
