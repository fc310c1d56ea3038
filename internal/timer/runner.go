package timer

import (
	"context"
	"time"
)

// Ticker abstracts time.Ticker so tests can drive the countdown by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewTicker returns a one-second wall-clock ticker.
func NewTicker() Ticker {
	return realTicker{t: time.NewTicker(time.Second)}
}

// Run starts c and feeds it ticks until it expires or ctx is cancelled.
// onTick, if set, is called with the remaining seconds after every tick.
// It returns true when the countdown expired and ctx.Err() when cancelled;
// on cancellation the countdown is paused.
func Run(ctx context.Context, c *Countdown, t Ticker, onTick func(remaining int)) (bool, error) {
	defer t.Stop()

	gen := c.Start()
	for {
		select {
		case <-ctx.Done():
			c.Pause()
			return false, ctx.Err()
		case <-t.C():
			switch c.Tick(gen) {
			case Expired:
				if onTick != nil {
					onTick(0)
				}
				return true, nil
			case Ticked:
				if onTick != nil {
					onTick(c.Remaining())
				}
			case Ignored:
				return false, nil
			}
		}
	}
}
