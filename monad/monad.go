// Package monad provides Monad, a minimal single-value wrapper for chaining
// transformations.
package monad

type Monad[T any] struct {
	value T
}

func Of[T any](v T) Monad[T] {
	return Monad[T]{value: v}
}

func (m Monad[T]) Get() T {
	return m.value
}

// Then applies a same-typed step, so steps can be chained as methods.
func (m Monad[T]) Then(fn func(T) T) Monad[T] {
	return Of(fn(m.value))
}

// Map wraps fn applied to the value.
func Map[T, U any](m Monad[T], fn func(T) U) Monad[U] {
	return Of(fn(m.value))
}

// FlatMap returns the Monad produced by fn as is. It flattens one level only.
func FlatMap[T, U any](m Monad[T], fn func(T) Monad[U]) Monad[U] {
	return fn(m.value)
}
