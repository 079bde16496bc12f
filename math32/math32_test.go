package math32

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0), Clamp[float32](-1, 0, 1))
	assert.Equal(t, float32(1), Clamp[float32](2, 0, 1))
	assert.Equal(t, 3, Clamp(3, 0, 5))
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, float32(0), Clamp01(-0.5))
	assert.Equal(t, float32(0.25), Clamp01(0.25))
	assert.Equal(t, float32(1), Clamp01(5))
	assert.Equal(t, float32(0), Clamp01(float32(math.NaN())))
}

func TestRandomInt(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomInt(4, 2)
		assert.GreaterOrEqual(t, v, 2)
		assert.Less(t, v, 6)
	}
	assert.Equal(t, 7, RandomInt(1, 7))
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Pi/2, ToRadians(90), 1e-6)
	assert.InDelta(t, 180, ToDegrees(math.Pi), 1e-4)
}
