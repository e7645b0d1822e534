package playback

import (
	"time"

	"github.com/ironsheep/img-to-ascii/internal/render"
)

// DefaultPeriod is the target time between frames.
const DefaultPeriod = 200 * time.Millisecond

// Wait returns how long to pause after a frame that took elapsed to show,
// so that frames start period apart. It is never negative.
func Wait(period, elapsed time.Duration) time.Duration {
	if elapsed >= period {
		return 0
	}
	return period - elapsed
}

// FrameWriter displays one frame.
type FrameWriter interface {
	WriteFrame(f *render.Frame) error
}

// Player displays frames one after another, subtracting each frame's display
// cost from Period before sleeping.
type Player struct {
	Period time.Duration
	Out    FrameWriter

	// Now and Sleep default to time.Now and time.Sleep.
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Play shows frames in order and stops at the first display error.
func (p *Player) Play(frames []*render.Frame) error {
	now := p.Now
	if now == nil {
		now = time.Now
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	period := p.Period
	if period <= 0 {
		period = DefaultPeriod
	}

	for _, f := range frames {
		start := now()
		if err := p.Out.WriteFrame(f); err != nil {
			return err
		}
		if d := Wait(period, now().Sub(start)); d > 0 {
			sleep(d)
		}
	}
	return nil
}
