package glcube_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarlune/glcube"
)

func TestFrameLoopAdvance(t *testing.T) {

	loop := &glcube.FrameLoop{Interval: 10 * time.Millisecond}

	// Priming frame never steps.
	delta, stepped := loop.Advance(100 * time.Millisecond)
	assert.False(t, stepped)
	assert.Zero(t, delta)

	// Less than (or exactly) one interval later: no step.
	_, stepped = loop.Advance(105 * time.Millisecond)
	assert.False(t, stepped)
	_, stepped = loop.Advance(110 * time.Millisecond)
	assert.False(t, stepped)

	// 13ms after the last step: steps, and the 3ms remainder carries over.
	delta, stepped = loop.Advance(113 * time.Millisecond)
	assert.True(t, stepped)
	assert.Equal(t, 13*time.Millisecond, delta)

	// The last step is now at 110ms, so 121ms is 11ms later.
	delta, stepped = loop.Advance(121 * time.Millisecond)
	assert.True(t, stepped)
	assert.Equal(t, 11*time.Millisecond, delta)

	// A long stall steps once, not once per missed interval.
	delta, stepped = loop.Advance(175 * time.Millisecond)
	assert.True(t, stepped)
	assert.Equal(t, 55*time.Millisecond, delta)
	assert.Equal(t, uint64(3), loop.Steps())

	assert.Equal(t, 10*time.Millisecond, loop.Remaining(170*time.Millisecond))
	assert.Equal(t, 5*time.Millisecond, loop.Remaining(175*time.Millisecond))

}

func TestFrameLoopClockGoesBack(t *testing.T) {

	loop := &glcube.FrameLoop{Interval: 10 * time.Millisecond}
	loop.Advance(time.Second)

	_, stepped := loop.Advance(500 * time.Millisecond)
	assert.False(t, stepped)

	_, stepped = loop.Advance(520 * time.Millisecond)
	assert.True(t, stepped)

}

func TestNewFrameLoop(t *testing.T) {
	assert.Equal(t, time.Second/60, glcube.NewFrameLoop(60).Interval)
	assert.Equal(t, time.Second, glcube.NewFrameLoop(0).Interval)
}

type fakeHost struct {
	frames   []time.Duration
	keys     *glcube.KeyState
	presents int
	waits    []time.Duration
}

func (host *fakeHost) NextFrame(c context.Context) (time.Duration, bool) {
	if c.Err() != nil || len(host.frames) == 0 {
		return 0, false
	}
	now := host.frames[0]
	host.frames = host.frames[1:]
	return now, true
}

func (host *fakeHost) Present() { host.presents++ }

func (host *fakeHost) Keys() *glcube.KeyState { return host.keys }

type waitingHost struct {
	*fakeHost
}

func (host waitingHost) Wait(c context.Context, d time.Duration) {
	host.waits = append(host.waits, d)
}

type fakeGame struct {
	updates   []time.Duration
	renders   int
	updateErr error
	renderErr error
	onUpdate  func(keys *glcube.KeyState)
}

func (game *fakeGame) Update(dt time.Duration, keys *glcube.KeyState) error {
	game.updates = append(game.updates, dt)
	if game.onUpdate != nil {
		game.onUpdate(keys)
	}
	return game.updateErr
}

func (game *fakeGame) Render() error {
	game.renders++
	return game.renderErr
}

func ms(values ...int) []time.Duration {
	out := make([]time.Duration, len(values))
	for i, v := range values {
		out[i] = time.Duration(v) * time.Millisecond
	}
	return out
}

func TestRunSkipsFramesThatDoNotStep(t *testing.T) {

	host := &fakeHost{frames: ms(0, 5, 12, 16, 30), keys: glcube.NewKeyState()}
	game := &fakeGame{}

	err := (&glcube.FrameLoop{Interval: 10 * time.Millisecond}).Run(context.Background(), host, game)
	require.NoError(t, err)

	// 0 primes, 5 is too early, 12 steps (last = 10), 16 is too early, 30 steps.
	assert.Equal(t, ms(12, 20), game.updates)
	assert.Equal(t, 2, game.renders)
	assert.Equal(t, 2, host.presents)

}

func TestRunPassesKeys(t *testing.T) {

	keys := glcube.NewKeyState()
	keys.Press(glcube.KeyArrowUp)

	host := &fakeHost{frames: ms(0, 20), keys: keys}

	var seen bool
	game := &fakeGame{onUpdate: func(k *glcube.KeyState) { seen = k.Down(glcube.KeyArrowUp) }}

	require.NoError(t, glcube.Run(context.Background(), host, game))
	assert.True(t, seen)

}

func TestRunStopsOnErrors(t *testing.T) {

	boom := errors.New("boom")

	t.Run("update", func(t *testing.T) {
		host := &fakeHost{frames: ms(0, 20, 40, 60)}
		game := &fakeGame{updateErr: boom}
		err := glcube.Run(context.Background(), host, game)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, game.updates, 1)
		assert.Zero(t, game.renders)
		assert.Zero(t, host.presents)
	})

	t.Run("render", func(t *testing.T) {
		host := &fakeHost{frames: ms(0, 20, 40, 60)}
		game := &fakeGame{renderErr: boom}
		err := glcube.Run(context.Background(), host, game)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, game.renders)
		assert.Zero(t, host.presents)
	})

	t.Run("quit", func(t *testing.T) {
		host := &fakeHost{frames: ms(0, 20, 40, 60)}
		game := &fakeGame{updateErr: glcube.ErrQuit}
		assert.NoError(t, glcube.Run(context.Background(), host, game))
		assert.Len(t, game.updates, 1)
	})

}

func TestRunCancelled(t *testing.T) {

	c, cancel := context.WithCancel(context.Background())
	cancel()

	host := &fakeHost{frames: ms(0, 20, 40)}
	game := &fakeGame{}

	err := glcube.Run(c, host, game)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, game.updates)

}

func TestRunWaitsWhenHostCan(t *testing.T) {

	host := waitingHost{&fakeHost{frames: ms(0, 4, 15)}}
	game := &fakeGame{}

	require.NoError(t, (&glcube.FrameLoop{Interval: 10 * time.Millisecond}).Run(context.Background(), host, game))

	// Priming at 0 waits a full interval; at 4ms, 6ms remain.
	assert.Equal(t, ms(10, 6), host.waits)
	assert.Len(t, game.updates, 1)

}
