package render

import (
	"iter"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// Renderer assembles Frames with a fixed Strategy.
type Renderer struct {
	strategy Strategy
}

// NewRenderer returns a Renderer for s.
func NewRenderer(s Strategy) *Renderer {
	return &Renderer{strategy: s}
}

// Strategy returns the renderer's strategy.
func (r *Renderer) Strategy() Strategy { return r.strategy }

// Render builds the Frame for img. Glyph-only lines lose their trailing
// blank cells; colored lines are left as sampled. A SampleSpec that yields
// no rows or columns for img fails with ErrInvalidGeometry.
func (r *Renderer) Render(img *imaging.Raster) (*Frame, error) {
	origins, err := Origins(img.Width(), img.Height(), r.strategy.Spec())
	if err != nil {
		return nil, err
	}

	colored := r.strategy.Colored()
	f := &Frame{
		Mode:    r.strategy.Mode(),
		Colored: colored,
		Lines:   make([]Line, 0, len(origins)),
	}
	for _, row := range origins {
		line := make(Line, 0, len(row))
		for _, at := range row {
			line = r.strategy.Encode(img, at, line)
		}
		if !colored {
			line = line.trimRight()
		}
		f.Lines = append(f.Lines, line)
	}
	return f, nil
}

// RenderAll renders rasters in source order and hands each result to yield
// one at a time, before the next raster is pulled. A raster that fails to
// render reaches yield with a nil Frame and its error. RenderAll stops at
// the first error yield returns and returns it.
func (r *Renderer) RenderAll(rasters iter.Seq[*imaging.Raster], yield func(*Frame, error) error) error {
	for img := range rasters {
		f, err := r.Render(img)
		if err := yield(f, err); err != nil {
			return err
		}
	}
	return nil
}
