package render

import (
	"image"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// blockStrategy renders one shading glyph per sample, repeated horizontally
// to offset the tall aspect ratio of text cells.
type blockStrategy struct {
	spec    SampleSpec
	repeat  int
	swap    bool
	palette Palette
}

func (b *blockStrategy) Mode() Mode       { return ModeBlock }
func (b *blockStrategy) Spec() SampleSpec { return b.spec }
func (b *blockStrategy) Colored() bool    { return false }
func (b *blockStrategy) Repeat() int      { return b.repeat }

func (b *blockStrategy) Encode(img *imaging.Raster, at image.Point, dst []Cell) []Cell {
	g := b.palette.Glyph(img.At(at.X, at.Y), b.swap)
	for i := 0; i < b.repeat; i++ {
		dst = append(dst, Cell{Glyph: g})
	}
	return dst
}
