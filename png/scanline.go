package png

import (
	"compress/zlib"
	"fmt"
	"io"
)

// decodeImage drives the scanline engine over the inflated IDAT stream.
// It is entered with the input positioned at the start of the first IDAT
// payload and returns once every scanline of every pass has been read,
// de-filtered and expanded into the pixel sink.
func (d *decoder) decodeImage() error {
	zr, err := zlib.NewReader(d)
	if err != nil {
		return d.zlibErr(err)
	}
	defer zr.Close()

	if d.header.Interlaced() {
		for _, scan := range interlacing {
			if err := d.decodePass(zr, scan); err != nil {
				return err
			}
		}
	} else {
		if err := d.decodePass(zr, interlaceScan{1, 1, 0, 0}); err != nil {
			return err
		}
	}

	// The inflated stream must end exactly at the last scanline. This read
	// also forces the inflater to consume and verify the zlib trailer.
	if _, err := zr.Read(d.tmp[:1]); err != io.EOF {
		if err == nil {
			return fmt.Errorf("%w: surplus data after final scanline", ErrCorruptData)
		}
		return d.zlibErr(err)
	}
	return nil
}

// decodePass decodes the scanlines of one interlace pass. The
// non-interlaced image is a single pass with unit strides. Passes whose
// sub-image is empty transmit no scanlines at all.
func (d *decoder) decodePass(zr io.Reader, scan interlaceScan) error {
	width := subImageLen(d.header.Width, scan.xOffset, scan.xFactor)
	height := subImageLen(d.header.Height, scan.yOffset, scan.yFactor)
	if width == 0 || height == 0 {
		return nil
	}

	// The +1 is for the per-row filter type byte at cr[0].
	rowSize := 1 + (d.bitsPerPixel*width+7)/8
	cr := d.pool.get(rowSize)
	pr := d.pool.get(rowSize)
	defer d.pool.put(cr)
	defer d.pool.put(pr)
	// Each pass starts with an all-zero previous row.
	clear(pr)

	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(zr, cr); err != nil {
			return d.zlibErr(err)
		}
		if err := unfilter(cr[0], cr[1:], pr[1:], d.filterBPP); err != nil {
			return err
		}
		row := scan.yOffset + y*scan.yFactor
		if err := d.expandRow(cr[1:], row, scan.xOffset, scan.xFactor, width); err != nil {
			return err
		}
		cr, pr = pr, cr
	}
	return nil
}

// subImageLen returns how many of the points offset, offset+factor, ... lie
// within a length-n axis.
func subImageLen(n, offset, factor int) int {
	if n <= offset {
		return 0
	}
	return (n - offset + factor - 1) / factor
}
