package sink

import (
	"io"

	"github.com/ironsheep/img-to-ascii/internal/render"
)

// Text writes each frame as a UTF-8 .txt file of newline-terminated lines.
type Text struct {
	Dir      string
	Compress bool
}

// Write implements Sink.
func (t *Text) Write(name string, f *render.Frame) (string, error) {
	path := Destination(name, t.Dir, compressedExt(".txt", t.Compress))
	err := writeFile(path, t.Compress, func(w io.Writer) error {
		_, err := io.WriteString(w, f.Text())
		return err
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
