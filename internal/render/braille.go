package render

import (
	"image"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

const (
	brailleBase = 0x2800

	// BrailleBlank stands in for an empty cell when blank space is not
	// wanted (U+2840, only the lowest-left dot raised).
	BrailleBlank = '⡀'

	// brailleThreshold classifies pixels darker than mid-gray as raised dots.
	brailleThreshold = 127.5
)

// dotOrder maps braille bit k (dot k+1) to its natural position, where
// natural positions are numbered in reading order over the 2×4 grid:
//
//	0 1
//	2 3
//	4 5
//	6 7
//
// and the braille dots are laid out as
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotOrder = [8]int{0, 2, 4, 1, 3, 5, 6, 7}

// DotMask is an 8-bit braille pattern; bit i set means dot i+1 is raised.
type DotMask uint8

// NewDotMask packs raised states given in natural order into a DotMask.
func NewDotMask(raised [8]bool) DotMask {
	var m DotMask
	for bit, pos := range dotOrder {
		if raised[pos] {
			m |= 1 << bit
		}
	}
	return m
}

// Natural unpacks m into raised states in natural order.
func (m DotMask) Natural() [8]bool {
	var out [8]bool
	for bit, pos := range dotOrder {
		out[pos] = m&(1<<bit) != 0
	}
	return out
}

// Rune returns the braille character for m. An empty mask becomes a space
// when whitespace is set and BrailleBlank otherwise.
func (m DotMask) Rune(whitespace bool) rune {
	if m == 0 {
		if whitespace {
			return ' '
		}
		return BrailleBlank
	}
	return rune(brailleBase + int(m))
}

// BrailleOffsets returns the eight sample offsets of a braille cell in
// natural order for compression c.
func BrailleOffsets(c int) [8]image.Point {
	return [8]image.Point{
		{0, 0}, {c, 0},
		{0, c}, {c, c},
		{0, 2 * c}, {c, 2 * c},
		{0, 3 * c}, {c, 3 * c},
	}
}

// Raised reports whether p shows as a raised dot. Dark pixels are raised
// unless swap inverts the classification.
func Raised(p imaging.Pixel, swap bool) bool {
	return (Luma(p) < brailleThreshold) != swap
}

type brailleStrategy struct {
	spec       SampleSpec
	offsets    [8]image.Point
	swap       bool
	whitespace bool
}

func (b *brailleStrategy) Mode() Mode       { return ModeBraille }
func (b *brailleStrategy) Spec() SampleSpec { return b.spec }
func (b *brailleStrategy) Colored() bool    { return false }
func (b *brailleStrategy) Repeat() int      { return 1 }

func (b *brailleStrategy) Encode(img *imaging.Raster, at image.Point, dst []Cell) []Cell {
	var raised [8]bool
	for i, off := range b.offsets {
		raised[i] = Raised(img.At(at.X+off.X, at.Y+off.Y), b.swap)
	}
	return append(dst, Cell{Glyph: NewDotMask(raised).Rune(b.whitespace)})
}
