package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ironsheep/img-to-ascii/internal/imaging"
	"github.com/ironsheep/img-to-ascii/internal/playback"
	"github.com/ironsheep/img-to-ascii/internal/render"
)

// Format is the kind of sink a plan writes to.
type Format int

const (
	FormatTerminal Format = iota
	FormatText
	FormatHTML
)

func (f Format) String() string {
	switch f {
	case FormatTerminal:
		return "terminal"
	case FormatText:
		return "text"
	case FormatHTML:
		return "html"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Policy decides what happens after a per-image failure.
type Policy int

const (
	// PolicyDefault aborts single-image runs and continues directory runs.
	PolicyDefault Policy = iota
	PolicyAbort
	PolicyContinue
)

// ParsePolicy accepts "", "abort" or "continue".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PolicyDefault, nil
	case "abort":
		return PolicyAbort, nil
	case "continue":
		return PolicyContinue, nil
	}
	return 0, fmt.Errorf("%w: unknown error policy %q", render.ErrUnsupportedConfiguration, s)
}

func (p Policy) String() string {
	switch p {
	case PolicyAbort:
		return "abort"
	case PolicyContinue:
		return "continue"
	}
	return "default"
}

// Sample-count limits used to pick a terminal compression: the smallest
// stride c with width/c below the limit.
const (
	BlockColumnLimit   = 67
	BrailleColumnLimit = 400
)

// DefaultOutputDir receives file artifacts when no directory is given.
const DefaultOutputDir = "output"

// Options mirrors the command line.
type Options struct {
	Input     string
	OutputDir string

	Block   bool
	Braille bool
	HTML    bool
	Text    bool

	Whitespace bool
	Colored    bool

	// Compression overrides the mode's default stride when positive.
	Compression int
	// Repeat overrides the mode's horizontal repeat when positive.
	Repeat int

	Delay    time.Duration
	Adjust   imaging.Adjustments
	Compress bool
	Policy   string

	// TerminalColumns is the width of the attached terminal, 0 if unknown.
	TerminalColumns int

	Verbose bool
}

// Plan is a validated conversion.
type Plan struct {
	Input  string
	Batch  bool
	Format Format
	Render render.Config

	// AutoCompression derives Render.Compression from each run's first
	// image through CompressionFor.
	AutoCompression bool
	ColumnLimit     int

	OutputDir string
	Compress  bool
	Delay     time.Duration
	Adjust    imaging.Adjustments
	Policy    Policy
}

// Plan validates o and resolves it into a Plan.
//
// Conflicts fail with render.ErrUnsupportedConfiguration: both or neither of
// Block and Braille, both HTML and Text, Colored with braille or text output,
// and Whitespace with block shading.
func (o Options) Plan() (*Plan, error) {
	if o.Block == o.Braille {
		if o.Block {
			return nil, fmt.Errorf("%w: --block and --braille are mutually exclusive", render.ErrUnsupportedConfiguration)
		}
		return nil, fmt.Errorf("%w: one of --block or --braille is required", render.ErrUnsupportedConfiguration)
	}
	if o.HTML && o.Text {
		return nil, fmt.Errorf("%w: --html and --text are mutually exclusive", render.ErrUnsupportedConfiguration)
	}
	if strings.TrimSpace(o.Input) == "" {
		return nil, fmt.Errorf("%w: an input file or directory is required", render.ErrUnsupportedConfiguration)
	}
	if o.Compression < 0 || o.Repeat < 0 {
		return nil, fmt.Errorf("%w: compression and repeat must not be negative", render.ErrUnsupportedConfiguration)
	}
	if err := o.Adjust.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", render.ErrUnsupportedConfiguration, err)
	}
	if o.Delay < 0 {
		return nil, fmt.Errorf("%w: delay must not be negative", render.ErrUnsupportedConfiguration)
	}
	policy, err := ParsePolicy(o.Policy)
	if err != nil {
		return nil, err
	}

	format := FormatTerminal
	switch {
	case o.HTML:
		format = FormatHTML
	case o.Text:
		format = FormatText
	}

	if o.Braille && o.Colored {
		return nil, fmt.Errorf("%w: --colored does not apply to braille", render.ErrUnsupportedConfiguration)
	}
	if format == FormatText && o.Colored {
		return nil, fmt.Errorf("%w: --colored does not apply to text output", render.ErrUnsupportedConfiguration)
	}
	if o.Block && o.Whitespace {
		return nil, fmt.Errorf("%w: --whitespace only applies to braille", render.ErrUnsupportedConfiguration)
	}

	p := &Plan{
		Input:     o.Input,
		Format:    format,
		OutputDir: o.OutputDir,
		Compress:  o.Compress,
		Delay:     o.Delay,
		Adjust:    o.Adjust,
		Policy:    policy,
	}
	if p.OutputDir == "" {
		p.OutputDir = DefaultOutputDir
	}
	if p.Delay == 0 {
		p.Delay = playback.DefaultPeriod
	}
	if info, err := os.Stat(o.Input); err == nil && info.IsDir() {
		p.Batch = true
	}
	if p.Policy == PolicyDefault {
		p.Policy = PolicyAbort
		if p.Batch {
			p.Policy = PolicyContinue
		}
	}

	cfg := render.Config{Whitespace: o.Whitespace}
	switch {
	case o.Block && format == FormatHTML && o.Colored:
		cfg.Mode = render.ModeColorHTML
	case o.Block && format == FormatTerminal && o.Colored:
		cfg.Mode, cfg.Repeat = render.ModeColorBlock, 3
	case o.Block && format == FormatTerminal:
		cfg.Mode, cfg.Repeat, cfg.Swap = render.ModeBlock, 3, true
	case o.Block:
		cfg.Mode, cfg.Compression, cfg.Repeat = render.ModeBlock, 1, 2
	case format == FormatHTML:
		cfg.Mode, cfg.Compression = render.ModeBraille, 2
	case format == FormatText:
		cfg.Mode, cfg.Compression = render.ModeBraille, 1
	default:
		cfg.Mode, cfg.Swap = render.ModeBraille, true
	}

	if format == FormatTerminal {
		p.AutoCompression = true
		p.ColumnLimit = BlockColumnLimit
		if cfg.Mode == render.ModeBraille {
			p.ColumnLimit = BrailleColumnLimit
		}
		p.ColumnLimit = capToTerminal(p.ColumnLimit, cfg, o.TerminalColumns)
	}
	if o.Compression > 0 {
		cfg.Compression = o.Compression
		p.AutoCompression = false
	}
	if o.Repeat > 0 {
		cfg.Repeat = o.Repeat
	}

	// Surface strategy-level conflicts (e.g. compression on color HTML) now.
	if _, err := render.NewStrategy(cfg); err != nil {
		return nil, err
	}
	p.Render = cfg
	return p, nil
}

// capToTerminal lowers limit so one rendered line fits in cols terminal
// columns. Widths are in sampled pixels: a line of width/c pixels becomes
// (width/c)/cw samples of r glyphs each.
func capToTerminal(limit int, cfg render.Config, cols int) int {
	if cols <= 0 {
		return limit
	}
	cw, r := 1, cfg.Repeat
	if cfg.Mode == render.ModeBraille {
		cw, r = 2, 1
	}
	if r < 1 {
		r = 1
	}
	if fit := cols*cw/r + 1; fit < limit {
		return fit
	}
	return limit
}

// CompressionFor returns the compression to use for an image width pixels
// wide: the smallest c ≥ 1 with width/c < limit.
func CompressionFor(width, limit int) int {
	if limit < 1 {
		limit = 1
	}
	c := 1
	for width/c >= limit {
		c++
	}
	return c
}

// RenderConfig returns the plan's render configuration for a run whose first
// image is width pixels wide.
func (p *Plan) RenderConfig(width int) render.Config {
	cfg := p.Render
	if p.AutoCompression {
		cfg.Compression = CompressionFor(width, p.ColumnLimit)
	}
	return cfg
}
