// Package seq builds slices from counts, ranges and other slices.
package seq

import (
	"errors"

	"github.com/on-the-ground/fp_ive_go/option"

	"golang.org/x/exp/constraints"
)

// ErrNonPositiveStep is the panic value of RangeStep for a step <= 0.
var ErrNonPositiveStep = errors.New("range step must be positive")

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pair holds two positionally matched values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Times returns [fn(0), fn(1), ..., fn(n-1)]. n <= 0 yields an empty slice.
func Times[T any](n int, fn func(int) T) []T {
	out := make([]T, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}

// Range returns start, start+1, ... while < end.
func Range[N Number](start, end N) []N {
	return RangeStep(start, end, 1)
}

// RangeStep returns start, start+step, ... while < end.
// It panics with ErrNonPositiveStep if step <= 0.
func RangeStep[N Number](start, end, step N) []N {
	if step <= 0 {
		panic(ErrNonPositiveStep)
	}
	out := []N{}
	for v := start; v < end; {
		out = append(out, v)
		next := v + step
		// next <= v means v+step wrapped around
		if next <= v {
			break
		}
		v = next
	}
	return out
}

// Repeat returns n copies of v. Reference types share the same referent.
func Repeat[T any](n int, v T) []T {
	return Times(n, func(int) T { return v })
}

// Zip pairs a and b by index. The result has len(a) elements; where b is
// shorter, Second is None.
func Zip[A, B any](a []A, b []B) []Pair[A, option.Option[B]] {
	out := make([]Pair[A, option.Option[B]], len(a))
	for i, x := range a {
		second := option.None[B]()
		if i < len(b) {
			second = option.Some(b[i])
		}
		out[i] = Pair[A, option.Option[B]]{First: x, Second: second}
	}
	return out
}

// ZipShortest pairs a and b by index, truncated to the shorter slice.
func ZipShortest[A, B any](a []A, b []B) []Pair[A, B] {
	n := min(len(a), len(b))
	out := make([]Pair[A, B], n)
	for i := range n {
		out[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return out
}
