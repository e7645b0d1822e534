package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ironsheep/img-to-ascii/internal/config"
	"github.com/ironsheep/img-to-ascii/internal/convert"
	"github.com/ironsheep/img-to-ascii/internal/imaging"
)

// rootFlags holds flag values that need parsing before they reach
// config.Options.
type rootFlags struct {
	opts       config.Options
	crop       string
	forceColor bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "img-to-ascii [flags] <image-or-directory>",
		Short: "Render images as block or braille text",
		Long: `Render an image, or every image in a directory, as shaded block glyphs or
braille dot patterns. Output goes to the terminal by default, or to .txt or
.html files with --text or --html. A directory rendered to the terminal is
played back as an animation.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Version:      Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Conversion errors are printed with their kind by runConvert.
			cmd.SilenceErrors = true
			return runConvert(cmd, f, args[0])
		},
	}

	o := &f.opts
	flags := cmd.Flags()
	flags.BoolVarP(&o.Block, "block", "l", false, "shade with block glyphs")
	flags.BoolVarP(&o.Braille, "braille", "r", false, "shade with braille dot patterns")
	flags.BoolVarP(&o.HTML, "html", "H", false, "write .html files")
	flags.BoolVarP(&o.Text, "text", "t", false, "write .txt files")
	flags.BoolVarP(&o.Whitespace, "whitespace", "w", false, "use spaces for empty braille cells")
	flags.BoolVarP(&o.Colored, "colored", "c", false, "emit true-color cells (block shading, terminal or html)")
	flags.StringVarP(&o.OutputDir, "output", "o", config.DefaultOutputDir, "directory for written files")
	flags.DurationVar(&o.Delay, "delay", 0, "time between frames during playback (default 200ms)")
	flags.IntVar(&o.Compression, "compression", 0, "sampling stride in pixels (default depends on mode)")
	flags.IntVar(&o.Repeat, "repeat", 0, "glyphs emitted per block sample (default depends on mode)")
	flags.IntVar(&o.Adjust.Width, "width", 0, "resize to this many pixels wide before sampling")
	flags.StringVar(&f.crop, "crop", "", "render only the region x1,y1,x2,y2 (x2 and y2 exclusive)")
	flags.Float64Var(&o.Adjust.Brightness, "brightness", 0, "brightness shift in [-1, 1]")
	flags.Float64Var(&o.Adjust.Contrast, "contrast", 0, "contrast change in [-1, 1]")
	flags.Float64Var(&o.Adjust.Gamma, "gamma", 0, "gamma correction (0 or 1 to disable)")
	flags.BoolVar(&o.Adjust.Invert, "invert", false, "invert colors before sampling")
	flags.BoolVar(&o.Compress, "zstd", false, "zstd-compress written files")
	flags.StringVar(&o.Policy, "policy", "", "on failure: abort or continue (default abort for files, continue for directories)")
	flags.BoolVar(&f.forceColor, "force-color", false, "emit color escapes even when stdout is not a terminal")
	flags.BoolVarP(&o.Verbose, "verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newServeCmd(), newPlayHTMLCmd(), newVersionCmd())
	return cmd
}

func runConvert(cmd *cobra.Command, f *rootFlags, input string) error {
	o := f.opts
	o.Input = input

	if f.crop != "" {
		r, err := parseRegion(f.crop)
		if err != nil {
			return reportError(cmd, err)
		}
		o.Adjust.Crop = &r
	}

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if stdoutTTY {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			o.TerminalColumns = width
		}
	}

	plan, err := o.Plan()
	if err != nil {
		return reportError(cmd, err)
	}

	runner := convert.NewRunner(plan, cmd.OutOrStdout(), cmd.ErrOrStderr())
	runner.ForceColor = f.forceColor
	if term.IsTerminal(int(os.Stdin.Fd())) {
		runner.Stdin = os.Stdin
	}
	if debugEnabled(o.Verbose) {
		runner.Logger = log.Default()
		log.Printf("img-to-ascii %s: %s output, mode %s", Version, plan.Format, plan.Render.Mode)
	}

	report, err := runner.Run()
	if report != nil {
		for _, failure := range report.Failures {
			fmt.Fprintln(cmd.ErrOrStderr(), failure)
		}
		if plan.Batch {
			fmt.Fprintln(cmd.ErrOrStderr(), report.Summary())
		}
	}
	if err != nil {
		var ie *convert.ItemError
		if errors.As(err, &ie) {
			// Already printed with the report.
			return err
		}
		return reportError(cmd, err)
	}
	if report.Failed() > 0 {
		return fmt.Errorf("%d of %d items failed", report.Failed(), report.Failed()+report.Succeeded)
	}
	return nil
}

// reportError prints err with its kind and returns it.
func reportError(cmd *cobra.Command, err error) error {
	if k := convert.Classify(err); k != convert.KindUnknown {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", k, err)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

// parseRegion parses "x1,y1,x2,y2".
func parseRegion(s string) (imaging.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return imaging.Region{}, fmt.Errorf("invalid crop %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Region{}, fmt.Errorf("invalid crop %q: %w", s, err)
		}
		v[i] = n
	}
	return imaging.Region{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}
