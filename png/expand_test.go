package png

import (
	"testing"
)

func TestBitSample(t *testing.T) {
	tests := []struct {
		name  string
		row   []byte
		depth int
		want  []uint8
	}{
		{"1-bit MSB first", []byte{0b1010_0110}, 1, []uint8{1, 0, 1, 0, 0, 1, 1, 0}},
		{"2-bit", []byte{0b11_01_00_10}, 2, []uint8{3, 1, 0, 2}},
		{"4-bit", []byte{0xA5, 0x3C}, 4, []uint8{0xA, 0x5, 0x3, 0xC}},
		{"8-bit", []byte{7, 200}, 8, []uint8{7, 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i, want := range tt.want {
				if got := bitSample(tt.row, tt.depth, i); got != want {
					t.Errorf("sample %d = %d, want %d", i, got, want)
				}
			}
		})
	}
}

func TestGrayscaleScaling(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		raw   []byte // one filtered scanline
		width int
		want  []uint8 // expected gray levels
	}{
		{"depth 1", 1, []byte{ftNone, 0b1000_0000}, 2, []uint8{255, 0}},
		{"depth 2", 2, []byte{ftNone, 0b00_01_10_11}, 4, []uint8{0, 85, 170, 255}},
		{"depth 4", 4, []byte{ftNone, 0x0F, 0x59}, 4, []uint8{0, 255, 5 * 17, 9 * 17}},
		{"depth 8", 8, []byte{ftNone, 0, 127, 255}, 3, []uint8{0, 127, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildPNG(t, tt.width, 1, tt.depth, ctGrayscale, itNone, nil, tt.raw)
			img := decodeBytes(t, data)
			for i, want := range tt.want {
				r, g, b, a := img.At(0, i)
				if r != want || g != want || b != want || a != 255 {
					t.Errorf("pixel %d = (%d,%d,%d,%d), want gray %d", i, r, g, b, a, want)
				}
			}
		})
	}
}

func TestGrayscaleAlpha(t *testing.T) {
	data := buildPNG(t, 2, 1, 8, ctGrayscaleAlpha, itNone, nil,
		[]byte{ftNone, 200, 50, 30, 255})
	img := decodeBytes(t, data)

	r, g, b, a := img.At(0, 0)
	if r != 200 || g != 200 || b != 200 || a != 50 {
		t.Errorf("pixel 0 = (%d,%d,%d,%d), want (200,200,200,50)", r, g, b, a)
	}
	r, g, b, a = img.At(0, 1)
	if r != 30 || g != 30 || b != 30 || a != 255 {
		t.Errorf("pixel 1 = (%d,%d,%d,%d), want (30,30,30,255)", r, g, b, a)
	}
}

func TestSubBytePalette(t *testing.T) {
	plte := []byte{
		10, 11, 12,
		20, 21, 22,
		30, 31, 32,
		40, 41, 42,
	}
	// Five 2-bit indices: 3, 0, 2, 1 | 1 (second byte).
	data := buildPNG(t, 5, 1, 2, ctPaletted, itNone,
		[][2][]byte{{[]byte("PLTE"), plte}},
		[]byte{ftNone, 0b11_00_10_01, 0b01_00_00_00})
	img := decodeBytes(t, data)

	wantIdx := []int{3, 0, 2, 1, 1}
	for i, k := range wantIdx {
		r, g, b, a := img.At(0, i)
		if r != plte[3*k] || g != plte[3*k+1] || b != plte[3*k+2] || a != 255 {
			t.Errorf("pixel %d = (%d,%d,%d,%d), want palette entry %d", i, r, g, b, a, k)
		}
	}
}

func TestRGBAImageSink(t *testing.T) {
	m := NewRGBAImage(2, 2)
	m.WriteRGBA8(1, 1, 1, 2, 3, 4)
	m.PackRGBRow(0, []byte{9, 8, 7, 6, 5, 4})

	r, g, b, a := m.At(0, 1)
	if [4]uint8{r, g, b, a} != [4]uint8{6, 5, 4, 255} {
		t.Errorf("packed pixel = (%d,%d,%d,%d)", r, g, b, a)
	}
	r, g, b, a = m.At(1, 1)
	if [4]uint8{r, g, b, a} != [4]uint8{1, 2, 3, 4} {
		t.Errorf("written pixel = (%d,%d,%d,%d)", r, g, b, a)
	}

	// Allocate reuses storage when possible.
	pix := m.Pix
	m.Allocate(1, 1)
	if &pix[0] != &m.Pix[0] {
		t.Error("Allocate reallocated a buffer that was big enough")
	}
}
