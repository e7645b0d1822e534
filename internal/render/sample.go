package render

import (
	"fmt"
	"image"
)

// SampleSpec describes how source pixels map to emitted glyphs.
type SampleSpec struct {
	// Compression is the sampling stride c. Must be at least 1.
	Compression int

	// CellWidth and CellHeight are the glyph footprint (cw, ch): one glyph
	// reads cw×ch sample points spaced c pixels apart.
	CellWidth  int
	CellHeight int
}

// Validate reports whether every field of s is positive.
func (s SampleSpec) Validate() error {
	if s.Compression < 1 {
		return fmt.Errorf("%w: compression %d must be at least 1", ErrUnsupportedConfiguration, s.Compression)
	}
	if s.CellWidth < 1 || s.CellHeight < 1 {
		return fmt.Errorf("%w: cell footprint %dx%d must be positive", ErrUnsupportedConfiguration, s.CellWidth, s.CellHeight)
	}
	return nil
}

// span counts origins k·c·cells along an axis of length n whose last
// sampled point k·c·cells + (cells-1)·c still lies inside [0, n).
func span(n, c, cells int) int {
	// The footprint must fit in n before (cells-1)*c or c*cells is formed,
	// or a huge stride overflows.
	if cells > 1 && c > (n-1)/(cells-1) {
		return 0
	}
	last := n - 1 - (cells-1)*c
	if last < 0 {
		return 0
	}
	return last/(c*cells) + 1
}

// Geometry returns the number of glyph rows and columns produced for a w×h
// image. It fails with ErrInvalidGeometry when either count is zero.
func Geometry(w, h int, s SampleSpec) (rows, cols int, err error) {
	if err := s.Validate(); err != nil {
		return 0, 0, err
	}
	rows = span(h, s.Compression, s.CellHeight)
	cols = span(w, s.Compression, s.CellWidth)
	if rows == 0 || cols == 0 {
		return rows, cols, fmt.Errorf("%w: %dx%d image with compression %d and %dx%d cells yields %d rows and %d columns",
			ErrInvalidGeometry, w, h, s.Compression, s.CellWidth, s.CellHeight, rows, cols)
	}
	return rows, cols, nil
}

// Origins enumerates sample origins row by row, top to bottom and left to
// right within a row.
func Origins(w, h int, s SampleSpec) ([][]image.Point, error) {
	rows, cols, err := Geometry(w, h, s)
	if err != nil {
		return nil, err
	}

	stepX := s.Compression * s.CellWidth
	stepY := s.Compression * s.CellHeight
	out := make([][]image.Point, rows)
	for j := range out {
		row := make([]image.Point, cols)
		for i := range row {
			row[i] = image.Pt(i*stepX, j*stepY)
		}
		out[j] = row
	}
	return out, nil
}
