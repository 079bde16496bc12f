package glcube

import (
	"context"
	"errors"
	"time"
)

// DefaultFPS is the target update rate used by Run.
const DefaultFPS = 60

// ErrQuit can be returned from Game.Update or Game.Render to stop the frame loop without reporting an error.
var ErrQuit = errors.New("glcube: quit")

// Game is what a frame loop drives. Update advances the simulation by dt, the time since the previous update, with
// the keys currently held down; Render draws the current state. Any error stops the loop.
type Game interface {
	Update(dt time.Duration, keys *KeyState) error
	Render() error
}

// Host supplies frame timestamps, presents rendered frames, and owns the keyboard state.
type Host interface {
	// NextFrame blocks until the host is ready for another frame and returns a monotonic timestamp for it. It
	// returns false once the host is closing or c is done.
	NextFrame(c context.Context) (time.Duration, bool)
	// Present shows the frame that was just rendered.
	Present()
	// Keys returns the host's live keyboard state.
	Keys() *KeyState
}

// Waiter is implemented by hosts that can idle (while still handling input) until the next update is due, rather than
// handing out frames the loop is going to skip.
type Waiter interface {
	Wait(c context.Context, d time.Duration)
}

// FrameLoop throttles updates to a fixed interval. The first timestamp it sees only primes it; after that, a frame
// steps once more than Interval has passed since the last step. The remainder of the elapsed time modulo Interval is
// carried over, so the update rate stays locked to the interval even if frames arrive at a different rate.
type FrameLoop struct {
	Interval time.Duration

	primed bool
	last   time.Duration
	steps  uint64
}

// NewFrameLoop returns a FrameLoop stepping at the given number of frames per second. Values below 1 are treated as 1.
func NewFrameLoop(fps int) *FrameLoop {
	return &FrameLoop{Interval: time.Second / time.Duration(max(fps, 1))}
}

// Advance feeds the timestamp of a new frame to the loop. It returns the time elapsed since the last step and whether
// the frame should update and render. A timestamp earlier than the last step re-primes the loop.
func (loop *FrameLoop) Advance(now time.Duration) (delta time.Duration, stepped bool) {

	if !loop.primed || now < loop.last {
		loop.primed = true
		loop.last = now
		return 0, false
	}

	delta = now - loop.last

	if delta <= loop.Interval {
		return delta, false
	}

	if loop.Interval > 0 {
		loop.last = now - delta%loop.Interval
	} else {
		loop.last = now
	}

	loop.steps++

	return delta, true

}

// Remaining returns how long after now the next step is due, given the last timestamp passed to Advance.
func (loop *FrameLoop) Remaining(now time.Duration) time.Duration {
	if !loop.primed {
		return 0
	}
	return max(loop.Interval-(now-loop.last), 0)
}

// Steps returns how many frames have stepped.
func (loop *FrameLoop) Steps() uint64 {
	return loop.steps
}

// Reset puts the loop back into its priming state.
func (loop *FrameLoop) Reset() {
	loop.primed = false
	loop.last = 0
	loop.steps = 0
}

// Run drives game until the host closes, c is cancelled, or the game returns an error. Frames that don't step are
// skipped; the loop just moves on to the next one. ErrQuit ends the loop with a nil error, as does the host closing.
// If c ends the loop, its error is returned.
func (loop *FrameLoop) Run(c context.Context, host Host, game Game) error {

	waiter, canWait := host.(Waiter)

	for {

		now, ok := host.NextFrame(c)
		if !ok {
			return c.Err()
		}

		delta, stepped := loop.Advance(now)

		if !stepped {
			if canWait {
				waiter.Wait(c, loop.Remaining(now))
			}
			continue
		}

		if err := game.Update(delta, host.Keys()); err != nil {
			return quitOrError(err)
		}

		if err := game.Render(); err != nil {
			return quitOrError(err)
		}

		host.Present()

	}

}

// Run drives game at DefaultFPS; see FrameLoop.Run.
func Run(c context.Context, host Host, game Game) error {
	return NewFrameLoop(DefaultFPS).Run(c, host, game)
}

func quitOrError(err error) error {
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}
