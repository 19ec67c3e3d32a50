package png

import "fmt"

// expandRow converts the de-filtered content bytes of one scanline into
// destination pixels. The i-th decoded pixel lands at column
// firstCol+i*colStride of destination row row. RGB and RGBA rows of
// non-interlaced images and of the final Adam7 pass use the bulk
// row-packing paths; all other rows are written pixel by pixel.
func (d *decoder) expandRow(cdat []byte, row, firstCol, colStride, width int) error {
	switch d.cb {
	case cbG1, cbG2, cbG4:
		depth := d.header.BitDepth
		// Scale d-bit samples onto the full 8-bit range.
		scale := uint8(255 / (1<<depth - 1))
		for i := 0; i < width; i++ {
			g := bitSample(cdat, depth, i) * scale
			d.sink.WriteRGBA8(row, firstCol+i*colStride, g, g, g, 0xff)
		}
	case cbG8:
		for i := 0; i < width; i++ {
			g := cdat[i]
			d.sink.WriteRGBA8(row, firstCol+i*colStride, g, g, g, 0xff)
		}
	case cbGA8:
		for i := 0; i < width; i++ {
			g, a := cdat[2*i], cdat[2*i+1]
			d.sink.WriteRGBA8(row, firstCol+i*colStride, g, g, g, a)
		}
	case cbP1, cbP2, cbP4, cbP8:
		depth := d.header.BitDepth
		for i := 0; i < width; i++ {
			idx := int(bitSample(cdat, depth, i))
			if 3*idx >= len(d.palette) {
				return fmt.Errorf("%w: palette index %d out of range", ErrCorruptData, idx)
			}
			a := uint8(0xff)
			if idx < len(d.paletteAlpha) {
				a = d.paletteAlpha[idx]
			}
			d.sink.WriteRGBA8(row, firstCol+i*colStride,
				d.palette[3*idx], d.palette[3*idx+1], d.palette[3*idx+2], a)
		}
	case cbTC8:
		if colStride == 1 && firstCol == 0 {
			d.sink.PackRGBRow(row, cdat[:3*width])
			break
		}
		for i := 0; i < width; i++ {
			d.sink.WriteRGBA8(row, firstCol+i*colStride,
				cdat[3*i], cdat[3*i+1], cdat[3*i+2], 0xff)
		}
	case cbTCA8:
		if colStride == 1 && firstCol == 0 {
			d.sink.PackRGBARow(row, cdat[:4*width])
			break
		}
		for i := 0; i < width; i++ {
			d.sink.WriteRGBA8(row, firstCol+i*colStride,
				cdat[4*i], cdat[4*i+1], cdat[4*i+2], cdat[4*i+3])
		}
	}
	return nil
}

// bitSample extracts the i-th depth-bit sample of a packed row, MSB first.
func bitSample(row []byte, depth, i int) uint8 {
	bit := i * depth
	return row[bit>>3] >> (8 - depth - bit&7) & (1<<depth - 1)
}
