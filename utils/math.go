package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolut value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the closed interval [lo, hi].
// In case lo > hi the upper bound wins.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite[T constraints.Float](f T) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Round rounds x to the given number of decimals.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
