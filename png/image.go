package png

// PixelSink receives decoded pixels. The decoder only ever hands over
// 8-bit RGBA samples; implementations define the destination layout and
// may pack them into any pixel representation.
type PixelSink interface {
	// Allocate is called once, after the header is validated, with the
	// final image dimensions.
	Allocate(width, height int)

	// WriteRGBA8 stores a single pixel.
	WriteRGBA8(row, col int, r, g, b, a uint8)

	// PackRGBRow stores a full row of RGB triplets at full opacity.
	// len(rgb) is exactly 3*width.
	PackRGBRow(row int, rgb []byte)

	// PackRGBARow stores a full row of RGBA quads. len(rgba) is exactly
	// 4*width.
	PackRGBARow(row int, rgba []byte)
}

// Ensure RGBAImage implements PixelSink
var _ PixelSink = (*RGBAImage)(nil)

// RGBAImage is the default pixel sink: a dense row-major 8-bit RGBA grid.
type RGBAImage struct {
	Width  int
	Height int
	Pix    []byte // 4 bytes per pixel: R, G, B, A
}

// NewRGBAImage creates an RGBAImage with allocated pixel storage.
func NewRGBAImage(width, height int) *RGBAImage {
	m := &RGBAImage{}
	m.Allocate(width, height)
	return m
}

// Allocate sizes the pixel grid, reusing storage when it is big enough.
func (m *RGBAImage) Allocate(width, height int) {
	m.Width, m.Height = width, height
	n := 4 * width * height
	if cap(m.Pix) >= n {
		m.Pix = m.Pix[:n]
		return
	}
	m.Pix = make([]byte, n)
}

// WriteRGBA8 stores a single pixel.
func (m *RGBAImage) WriteRGBA8(row, col int, r, g, b, a uint8) {
	o := 4 * (row*m.Width + col)
	m.Pix[o] = r
	m.Pix[o+1] = g
	m.Pix[o+2] = b
	m.Pix[o+3] = a
}

// PackRGBRow stores a full row of RGB triplets at full opacity.
func (m *RGBAImage) PackRGBRow(row int, rgb []byte) {
	o := 4 * row * m.Width
	for i := 0; i+2 < len(rgb); i += 3 {
		m.Pix[o] = rgb[i]
		m.Pix[o+1] = rgb[i+1]
		m.Pix[o+2] = rgb[i+2]
		m.Pix[o+3] = 0xff
		o += 4
	}
}

// PackRGBARow stores a full row of RGBA quads.
func (m *RGBAImage) PackRGBARow(row int, rgba []byte) {
	copy(m.Pix[4*row*m.Width:], rgba)
}

// At returns the pixel at (row, col).
func (m *RGBAImage) At(row, col int) (r, g, b, a uint8) {
	o := 4 * (row*m.Width + col)
	return m.Pix[o], m.Pix[o+1], m.Pix[o+2], m.Pix[o+3]
}
