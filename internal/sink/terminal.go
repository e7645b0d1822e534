package sink

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
	"github.com/ironsheep/img-to-ascii/internal/render"
)

// Terminal writes frames straight to a stream, typically stdout.
type Terminal struct {
	Out io.Writer

	// ForceColor emits color escapes even when Out is not a terminal.
	ForceColor bool
}

// Write implements Sink. The returned location is always empty.
func (t *Terminal) Write(_ string, f *render.Frame) (string, error) {
	if err := t.WriteFrame(f); err != nil {
		return "", err
	}
	return "", nil
}

// WriteFrame prints f followed by a blank line.
func (t *Terminal) WriteFrame(f *render.Frame) error {
	bw := bufio.NewWriter(t.Out)
	if !f.Colored {
		bw.WriteString(f.Text())
	} else {
		for _, line := range f.Lines {
			t.writeColoredLine(bw, line)
			bw.WriteByte('\n')
		}
	}
	bw.WriteByte('\n')
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write to terminal: %w: %w", ErrIOWrite, err)
	}
	return nil
}

// writeColoredLine styles runs of equally colored cells with one escape
// sequence each.
func (t *Terminal) writeColoredLine(w *bufio.Writer, line render.Line) {
	for i := 0; i < len(line); {
		j := i
		for j < len(line) && line[j].Color == line[i].Color {
			j++
		}
		w.WriteString(t.style(line[i].Color).Sprint(line[i:j].String()))
		i = j
	}
}

func (t *Terminal) style(p imaging.Pixel) *color.Color {
	c := color.RGB(int(p.R), int(p.G), int(p.B))
	if t.ForceColor {
		c.EnableColor()
	}
	return c
}
