package render

import (
	"fmt"
	"image"
	"strings"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// Mode selects a rendering strategy.
type Mode int

const (
	ModeBlock      Mode = iota // shading glyphs from BlockPalette
	ModeBraille                // 2×4 braille dot cells
	ModeColorBlock             // solid glyphs in true color
	ModeColorHTML              // every pixel as colored glyphs, compression 1
)

var modeNames = map[Mode]string{
	ModeBlock:      "block",
	ModeBraille:    "braille",
	ModeColorBlock: "color_block",
	ModeColorHTML:  "color_html",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String. Hyphens are accepted in place of
// underscores.
func ParseMode(s string) (Mode, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, name := range modeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrUnsupportedConfiguration, s)
}

// Config selects and parameterizes a rendering strategy. Zero Compression and
// Repeat take the mode's defaults.
type Config struct {
	Mode        Mode
	Compression int
	Repeat      int
	Swap        bool
	Whitespace  bool
}

// Default horizontal repeats per mode.
const (
	DefaultBlockRepeat      = 1
	DefaultColorBlockRepeat = 3
	DefaultColorHTMLRepeat  = 2
)

// Strategy encodes the sample at one origin into cells.
type Strategy interface {
	Mode() Mode
	Spec() SampleSpec
	// Colored reports whether cells carry explicit color. Colored lines are
	// never trimmed.
	Colored() bool
	// Repeat is the number of cells emitted per sample origin.
	Repeat() int
	// Encode appends the cells for the sample at origin to dst.
	Encode(img *imaging.Raster, origin image.Point, dst []Cell) []Cell
}

// NewStrategy validates cfg and builds the matching Strategy. Invalid or
// conflicting options fail with ErrUnsupportedConfiguration.
func NewStrategy(cfg Config) (Strategy, error) {
	if cfg.Compression < 0 {
		return nil, fmt.Errorf("%w: compression %d must not be negative", ErrUnsupportedConfiguration, cfg.Compression)
	}
	if cfg.Repeat < 0 {
		return nil, fmt.Errorf("%w: repeat %d must not be negative", ErrUnsupportedConfiguration, cfg.Repeat)
	}
	if cfg.Whitespace && cfg.Mode != ModeBraille {
		return nil, fmt.Errorf("%w: whitespace only applies to braille, not %s", ErrUnsupportedConfiguration, cfg.Mode)
	}

	c := cfg.Compression
	if c == 0 {
		c = 1
	}
	repeat := func(def int) int {
		if cfg.Repeat == 0 {
			return def
		}
		return cfg.Repeat
	}

	switch cfg.Mode {
	case ModeBlock:
		return &blockStrategy{
			spec:    SampleSpec{Compression: c, CellWidth: 1, CellHeight: 1},
			repeat:  repeat(DefaultBlockRepeat),
			swap:    cfg.Swap,
			palette: BlockPalette,
		}, nil
	case ModeBraille:
		if cfg.Repeat > 1 {
			return nil, fmt.Errorf("%w: braille cells cannot be repeated", ErrUnsupportedConfiguration)
		}
		return &brailleStrategy{
			spec:       SampleSpec{Compression: c, CellWidth: 2, CellHeight: 4},
			offsets:    BrailleOffsets(c),
			swap:       cfg.Swap,
			whitespace: cfg.Whitespace,
		}, nil
	case ModeColorBlock:
		if cfg.Swap {
			return nil, fmt.Errorf("%w: swap does not apply to %s", ErrUnsupportedConfiguration, cfg.Mode)
		}
		return &colorStrategy{
			mode:   ModeColorBlock,
			spec:   SampleSpec{Compression: c, CellWidth: 1, CellHeight: 1},
			repeat: repeat(DefaultColorBlockRepeat),
		}, nil
	case ModeColorHTML:
		if c != 1 {
			return nil, fmt.Errorf("%w: %s always samples every pixel, compression %d not allowed", ErrUnsupportedConfiguration, cfg.Mode, c)
		}
		if cfg.Swap {
			return nil, fmt.Errorf("%w: swap does not apply to %s", ErrUnsupportedConfiguration, cfg.Mode)
		}
		return &colorStrategy{
			mode:   ModeColorHTML,
			spec:   SampleSpec{Compression: 1, CellWidth: 1, CellHeight: 1},
			repeat: repeat(DefaultColorHTMLRepeat),
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown mode %s", ErrUnsupportedConfiguration, cfg.Mode)
}
