package colorspace

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar math is dispatched on the element type so that float32 colors are
// computed in single precision rather than round-tripped through float64.

func pow[T Float](x, y T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Pow(x, float32(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

func tanh[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Tanh(x))
	}
	return T(math.Tanh(float64(x)))
}

func floor[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Floor(x))
	}
	return T(math.Floor(float64(x)))
}

func abs[T Float](x T) T {
	if x, ok := any(x).(float32); ok {
		return T(math32.Abs(x))
	}
	return T(math.Abs(float64(x)))
}

// pi is π rounded to T.
func pi[T Float]() T {
	return T(math.Pi)
}
