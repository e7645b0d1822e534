package convert

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/schollz/progressbar/v3"

	"github.com/ironsheep/img-to-ascii/internal/config"
	"github.com/ironsheep/img-to-ascii/internal/imaging"
	"github.com/ironsheep/img-to-ascii/internal/playback"
	"github.com/ironsheep/img-to-ascii/internal/render"
	"github.com/ironsheep/img-to-ascii/internal/sink"
)

// Report summarizes a run.
type Report struct {
	Succeeded int
	Failures  []*ItemError
	// Artifacts lists the files written, in input order.
	Artifacts []string
}

// Failed returns the number of failed items.
func (r *Report) Failed() int { return len(r.Failures) }

// Summary returns "N succeeded, M failed".
func (r *Report) Summary() string {
	return fmt.Sprintf("%d succeeded, %d failed", r.Succeeded, r.Failed())
}

// Runner executes a Plan. Images are converted strictly one at a time; each
// image is evicted from Cache as soon as its frame exists.
type Runner struct {
	Plan  *config.Plan
	Cache *imaging.ImageCache

	// Stdout receives terminal output. Stderr receives progress bars and the
	// playback prompt. Stdin, when set, is read for the Enter keypress that
	// starts playback.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// ForceColor is passed to the terminal sink.
	ForceColor bool

	// Logger receives per-item progress lines; nil disables them.
	Logger *log.Logger

	renderer *render.Renderer
	player   *playback.Player
}

// NewRunner returns a Runner for plan writing terminal output to stdout and
// diagnostics to stderr.
func NewRunner(plan *config.Plan, stdout, stderr io.Writer) *Runner {
	return &Runner{
		Plan:   plan,
		Cache:  imaging.NewImageCache(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

// Run converts every input item. With PolicyAbort it stops at the first
// failure and returns it; with PolicyContinue failures are collected in the
// Report and the returned error is nil. Errors that prevent the run from
// starting at all, such as an unreadable input directory, are always
// returned.
func (r *Runner) Run() (*Report, error) {
	items := []string{r.Plan.Input}
	if r.Plan.Batch {
		var err error
		items, err = imaging.ListImages(r.Plan.Input)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("no files in %s", r.Plan.Input)
		}
	}

	if r.Plan.Format == config.FormatTerminal {
		return r.runTerminal(items)
	}
	return r.runFiles(items)
}

func (r *Runner) runFiles(items []string) (*Report, error) {
	var out sink.Sink
	if r.Plan.Format == config.FormatHTML {
		out = &sink.HTML{Dir: r.Plan.OutputDir, Compress: r.Plan.Compress}
	} else {
		out = &sink.Text{Dir: r.Plan.OutputDir, Compress: r.Plan.Compress}
	}

	report := &Report{}
	err := r.each(items, report, "Converting", func(item string, f *render.Frame) error {
		path, err := out.Write(item, f)
		if err != nil {
			return err
		}
		report.Succeeded++
		report.Artifacts = append(report.Artifacts, path)
		r.logf("Wrote %s", path)
		return nil
	})
	return report, err
}

func (r *Runner) runTerminal(items []string) (*Report, error) {
	term := &sink.Terminal{Out: r.Stdout, ForceColor: r.ForceColor}
	report := &Report{}

	if !r.Plan.Batch {
		err := r.each(items, report, "", func(_ string, f *render.Frame) error {
			if err := term.WriteFrame(f); err != nil {
				return err
			}
			report.Succeeded++
			return nil
		})
		return report, err
	}

	frames := make([]*render.Frame, 0, len(items))
	err := r.each(items, report, "Loading frames", func(_ string, f *render.Frame) error {
		frames = append(frames, f)
		return nil
	})
	if err != nil {
		return report, err
	}

	if r.Stdin != nil {
		fmt.Fprintln(r.Stderr, "Image loading complete, press Enter to begin playing")
		bufio.NewReader(r.Stdin).ReadString('\n')
	}

	player := r.player
	if player == nil {
		player = &playback.Player{Period: r.Plan.Delay, Out: term}
	}
	if err := player.Play(frames); err != nil {
		return report, newItemError(r.Plan.Input, err)
	}
	report.Succeeded += len(frames)
	return report, nil
}

// each renders items in order through the run's Renderer and hands every
// frame to consume before the next image is loaded. Failures, including
// those consume returns, are recorded in report; the returned error is the
// one that ended the run under PolicyAbort.
func (r *Runner) each(items []string, report *Report, desc string, consume func(item string, f *render.Frame) error) error {
	bar := r.progress(len(items), desc)
	defer bar.Finish()

	var (
		stop    error
		current string
		next    int
	)
	// load returns the next image that decodes, recording the ones that
	// do not.
	load := func() (*imaging.Raster, bool) {
		for stop == nil && next < len(items) {
			item := items[next]
			next++
			raster, err := r.raster(item)
			bar.Add(1)
			if err != nil {
				stop = r.fail(report, item, err)
				continue
			}
			current = item
			return raster, true
		}
		return nil, false
	}

	first, ok := load()
	if !ok {
		return stop
	}
	renderer, err := r.ensureRenderer(first.Width())
	if err != nil {
		return r.record(report, current, err)
	}

	rasters := func(yield func(*imaging.Raster) bool) {
		for raster, ok := first, true; ok; raster, ok = load() {
			if !yield(raster) {
				return
			}
		}
	}
	err = renderer.RenderAll(rasters, func(f *render.Frame, err error) error {
		if err == nil {
			err = consume(current, f)
		}
		if err != nil {
			return r.fail(report, current, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return stop
}

// Frame decodes, preprocesses and renders one image.
func (r *Runner) Frame(item string) (*render.Frame, error) {
	raster, err := r.raster(item)
	if err != nil {
		return nil, err
	}
	renderer, err := r.ensureRenderer(raster.Width())
	if err != nil {
		return nil, err
	}
	return renderer.Render(raster)
}

// raster decodes and preprocesses item. The decoded image leaves the cache
// before raster returns.
func (r *Runner) raster(item string) (*imaging.Raster, error) {
	img, err := r.Cache.Load(item)
	if err != nil {
		return nil, err
	}
	defer r.Cache.Evict(item)

	img, err = imaging.Preprocess(img, r.Plan.Adjust)
	if err != nil {
		return nil, fmt.Errorf("failed to preprocess image: %w: %w", render.ErrUnsupportedConfiguration, err)
	}
	raster := imaging.NewRaster(img)
	r.logf("Processing %s: %dx%d", item, raster.Width(), raster.Height())
	return raster, nil
}

// ensureRenderer returns the run's Renderer, building it on first use. The
// first image that decodes fixes the strategy for the rest of the run, so an
// automatic compression derived from its width applies to every frame.
func (r *Runner) ensureRenderer(width int) (*render.Renderer, error) {
	if r.renderer != nil {
		return r.renderer, nil
	}
	s, err := render.NewStrategy(r.Plan.RenderConfig(width))
	if err != nil {
		return nil, err
	}
	r.renderer = render.NewRenderer(s)
	return r.renderer, nil
}

// fail records err for item and returns the error that should end the run,
// or nil to continue.
func (r *Runner) fail(report *Report, item string, err error) error {
	ie := r.record(report, item, err)
	if r.Plan.Policy == config.PolicyAbort {
		return ie
	}
	return nil
}

// record appends the failure of item to report.
func (r *Runner) record(report *Report, item string, err error) *ItemError {
	ie := newItemError(item, err)
	report.Failures = append(report.Failures, ie)
	return ie
}

func (r *Runner) progress(n int, desc string) *progressbar.ProgressBar {
	w := r.Stderr
	if w == nil || !r.Plan.Batch {
		w = io.Discard
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *Runner) logf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
