package colorspace

import "fmt"

// Float is the set of element types the package is instantiated with.
type Float interface {
	float32 | float64
}

// Vec3 is a color triple. Its meaning depends on the space it came from:
// (r, g, b), (h, s, l), (h, s, v), (x, y, z) or (L, a, b).
type Vec3[T Float] struct {
	X, Y, Z T
}

// Vec4 is only used by the branchless HSV conversion.
type Vec4[T Float] struct {
	X, Y, Z, W T
}

// V3 is shorthand for Vec3[T]{x, y, z}.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Splat returns a Vec3 with all three components set to v.
func Splat[T Float](v T) Vec3[T] {
	return Vec3[T]{v, v, v}
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul multiplies component-wise.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div divides component-wise.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Map applies f to each component.
func (v Vec3[T]) Map(f func(T) T) Vec3[T] {
	return Vec3[T]{f(v.X), f(v.Y), f(v.Z)}
}

// Clamp clamps each component to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi T) Vec3[T] {
	return Vec3[T]{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi), Clamp(v.Z, lo, hi)}
}

// Saturate clamps each component to [0, 1].
func (v Vec3[T]) Saturate() Vec3[T] {
	return v.Clamp(0, 1)
}

// Lerp interpolates each component towards o by t.
func (v Vec3[T]) Lerp(o Vec3[T], t T) Vec3[T] {
	return Vec3[T]{Mix(v.X, o.X, t), Mix(v.Y, o.Y, t), Mix(v.Z, o.Z, t)}
}

// MaxAbsDiff returns the largest absolute per-component difference, the
// infinity norm of v - o.
func (v Vec3[T]) MaxAbsDiff(o Vec3[T]) T {
	d := v.Sub(o)
	return max(abs(d.X), abs(d.Y), abs(d.Z))
}

func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Vec3Of converts between element types.
func Vec3Of[T, U Float](v Vec3[U]) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

// Clamp returns x limited to [lo, hi].
func Clamp[T Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Saturate clamps x to [0, 1].
func Saturate[T Float](x T) T {
	return Clamp(x, 0, 1)
}

// Mix interpolates linearly between a and b: a*(1-t) + b*t.
// With t exactly 0 or 1 it selects a or b without rounding.
func Mix[T Float](a, b, t T) T {
	return a*(1-t) + b*t
}

// Step returns 0 if x < edge and 1 otherwise.
func Step[T Float](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

// Fract returns the fractional part x - floor(x), always in [0, 1).
func Fract[T Float](x T) T {
	return x - floor(x)
}

func mix4[T Float](a, b Vec4[T], t T) Vec4[T] {
	return Vec4[T]{Mix(a.X, b.X, t), Mix(a.Y, b.Y, t), Mix(a.Z, b.Z, t), Mix(a.W, b.W, t)}
}
