// math32 is a stand-in for the built-in math package for the handful of float32 helpers glcube needs, so colors,
// cameras and animations don't have to convert to float64 and back at every call site.
package math32

import (
	"math"
	"math/rand"
)

// ToRadians is a helper function to easily convert degrees to radians (which is what the camera and rotation functions use).
func ToRadians(degrees float32) float32 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math.Pi * 180
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Clamp01 clamps a value to the 0-1 range used by color channels. NaN clamps to 0.
func Clamp01(value float32) float32 {
	if !(value > 0) {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// RandomInt returns floor(rand * max) + min, i.e. an integer in [min, min+max).
func RandomInt(max, min int) int {
	return int(math.Floor(rand.Float64()*float64(max))) + min
}
