// Package option provides Option, a value that is either Some(T) or None.
//
// Presence is tracked with an explicit flag, so zero values such as 0, ""
// and false are ordinary present values. The zero Option[T] is None.
package option

import (
	"errors"
	"fmt"
)

// ErrUnwrappedNone is the panic value of Unwrap on a None.
var ErrUnwrappedNone = errors.New("unwrapped None")

// Option holds either a value of type T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable returns None if p is nil and Some(*p) otherwise.
func FromNullable[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the contained value.
// It panics with ErrUnwrappedNone if the Option is None.
func (o Option[T]) Unwrap() T {
	v, err := o.TryUnwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// TryUnwrap is the non-panicking variant of Unwrap.
func (o Option[T]) TryUnwrap() (T, error) {
	if !o.some {
		var zero T
		return zero, ErrUnwrappedNone
	}
	return o.value, nil
}

// UnwrapUnchecked returns the contained value without checking presence.
// A None yields the zero value of T.
func (o Option[T]) UnwrapUnchecked() T {
	return o.value
}

// UnwrapOr returns the contained value or def. def is evaluated eagerly by
// the caller; use UnwrapOrElse when computing it is expensive.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or the result of fn.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Get is the comma-ok accessor.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// Filter keeps the value only if pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o if it is Some, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to the contained value. fn is not called on None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// FlatMap applies fn to the contained value and returns its Option as is.
func FlatMap[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}
