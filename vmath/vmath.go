package vmath

import "cmp"

// Q8.8 Fixed Point constants
const (
	Shift = 8
	Scale = 1 << Shift
	Half  = 1 << (Shift - 1)
)

// Fixed is a signed 8.8 fixed-point value: one unit is 1/256 of a pixel
type Fixed int32

// Signed covers the integer kinds Abs accepts
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// --- Arithmetic ---

func FromInt(i int) Fixed { return Fixed(i << Shift) }

// ToInt truncates with an arithmetic shift, so negative fractions round toward -inf
func ToInt(f Fixed) int { return int(f >> Shift) }

// Clamp bounds v to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns absolute value
func Abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
