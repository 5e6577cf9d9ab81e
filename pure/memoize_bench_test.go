package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/fp_ive_go/pure"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var fib func(int) int
	fib, _ = pure.Memoize1(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = fib(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	sizes := []int{0, 8, 32}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("MaxEntries_%d", size), func(b *testing.B) {
			var lev func(string, string) int
			lev, _ = pure.Memoize2(func(a, b string) int {
				if len(a) == 0 {
					return len(b)
				}
				if len(b) == 0 {
					return len(a)
				}
				if a[0] == b[0] {
					return lev(a[1:], b[1:])
				}
				return 1 + min(
					lev(a[1:], b),
					lev(a, b[1:]),
					lev(a[1:], b[1:]),
				)
			}, pure.WithMaxEntries(size))

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = lev("kitten", "sitting")
			}
		})
	}
}

type Point struct {
	X, Y float64
}

func BenchmarkMemoizedDist(b *testing.B) {
	var dist func(Point, Point) float64
	dist, _ = pure.Memoize2(func(p1, p2 Point) float64 {
		dx := p1.X - p2.X
		dy := p1.Y - p2.Y
		return dx*dx + dy*dy
	})

	p1 := Point{1.5, 2.5}
	p2 := Point{3.0, 4.0}
	for i := 0; i < b.N; i++ {
		_ = dist(p1, p2)
	}
}
