// Package png implements a streaming decoder for the PNG file format
// (ISO/IEC 15948). The decoder reads one scanline at a time from the
// compressed data stream, so memory use is bounded by two rows plus the
// inflater state regardless of image size.
//
// Decoded pixels are delivered as 8-bit RGBA samples through the PixelSink
// interface; RGBAImage is the default sink. The package registers itself
// with the codec registry under the name "png" and media type "image/png".
package png

// Color type, as per the PNG spec.
const (
	ctGrayscale      = 0
	ctTrueColor      = 2
	ctPaletted       = 3
	ctGrayscaleAlpha = 4
	ctTrueColorAlpha = 6
)

// A cb is a combination of color type and bit depth.
const (
	cbInvalid = iota
	cbG1
	cbG2
	cbG4
	cbG8
	cbGA8
	cbTC8
	cbP1
	cbP2
	cbP4
	cbP8
	cbTCA8
)

// Filter type, as per the PNG spec.
const (
	ftNone    = 0
	ftSub     = 1
	ftUp      = 2
	ftAverage = 3
	ftPaeth   = 4
)

// Interlace type.
const (
	itNone  = 0
	itAdam7 = 1
)

// interlaceScan defines the placement and size of one Adam7 pass.
type interlaceScan struct {
	xFactor, yFactor, xOffset, yOffset int
}

// interlacing is the seven-pass Adam7 grid. Pass k transmits the pixels at
// columns xOffset+i*xFactor of rows yOffset+j*yFactor.
// See https://www.w3.org/TR/PNG/#8Interlace
var interlacing = []interlaceScan{
	{8, 8, 0, 0},
	{8, 8, 4, 0},
	{4, 8, 0, 4},
	{4, 4, 2, 0},
	{2, 4, 0, 2},
	{2, 2, 1, 0},
	{1, 2, 0, 1},
}

// Decoding stage. The PNG specification says that IHDR, PLTE (if present),
// tRNS (if present), IDAT and IEND must appear in that order, with nothing
// before IHDR and nothing after IEND.
// https://www.w3.org/TR/PNG/#5ChunkOrdering
const (
	dsStart = iota
	dsSeenIHDR
	dsSeenPLTE
	dsSeenIDAT
	dsSeenIEND
)

const pngHeader = "\x89PNG\r\n\x1a\n"
