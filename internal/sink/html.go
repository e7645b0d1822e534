package sink

import (
	"bufio"
	"html"
	"io"

	"github.com/ironsheep/img-to-ascii/internal/render"
)

// HTML writes each frame as a UTF-8 .html file.
//
// Glyph frames are wrapped in a <pre> block. Colored frames become one
// <font> element per cell with a <br> after every line.
type HTML struct {
	Dir      string
	Compress bool
}

// Write implements Sink.
func (h *HTML) Write(name string, f *render.Frame) (string, error) {
	path := Destination(name, h.Dir, compressedExt(".html", h.Compress))
	err := writeFile(path, h.Compress, func(w io.Writer) error {
		return EncodeHTML(w, f)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// EncodeHTML writes the HTML document for f to w.
func EncodeHTML(w io.Writer, f *render.Frame) error {
	bw := bufio.NewWriter(w)
	if !f.Colored {
		bw.WriteString("<pre>\n")
		bw.WriteString(html.EscapeString(f.Text()))
		bw.WriteString("\n</pre>")
		return bw.Flush()
	}

	for _, line := range f.Lines {
		for _, c := range line {
			bw.WriteString("<font color='")
			bw.WriteString(c.Color.Hex())
			bw.WriteString("'>")
			bw.WriteString(html.EscapeString(string(c.Glyph)))
			bw.WriteString("</font>")
		}
		bw.WriteString("<br>\n")
	}
	return bw.Flush()
}
