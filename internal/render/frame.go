package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// Cell is one emitted glyph, optionally carrying an explicit color.
type Cell struct {
	Glyph   rune
	Color   imaging.Pixel
	Colored bool
}

// Blank reports whether c is background that may be trimmed from a line end.
func (c Cell) Blank() bool {
	return !c.Colored && unicode.IsSpace(c.Glyph)
}

// Line is an ordered row of cells.
type Line []Cell

// String concatenates the line's glyphs, ignoring color.
func (l Line) String() string {
	var b strings.Builder
	b.Grow(len(l) * 3)
	for _, c := range l {
		b.WriteRune(c.Glyph)
	}
	return b.String()
}

// trimRight drops trailing blank cells.
func (l Line) trimRight() Line {
	n := len(l)
	for n > 0 && l[n-1].Blank() {
		n--
	}
	return l[:n]
}

// Frame is one rendered image.
type Frame struct {
	Mode    Mode
	Colored bool
	Lines   []Line
}

// Text returns the frame's glyphs with every line terminated by "\n".
func (f *Frame) Text() string {
	var b strings.Builder
	for _, l := range f.Lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Width returns the display width in terminal columns of the widest line.
func (f *Frame) Width() int {
	w := 0
	for _, l := range f.Lines {
		if lw := runewidth.StringWidth(l.String()); lw > w {
			w = lw
		}
	}
	return w
}
