// Package result provides Result, the outcome of a computation that either
// succeeded with a T or failed with an E.
package result

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/fp_ive_go/internal/encode"
	"github.com/on-the-ground/fp_ive_go/option"
)

var ErrUnwrapMismatch = errors.New("unwrap on the wrong variant")

// UnwrapMismatchError is the panic value of Unwrap on an Err and of
// UnwrapErr on an Ok. Value holds the JSON form of what was found instead.
type UnwrapMismatchError struct {
	Method string
	Found  string
	Value  string
}

func (e *UnwrapMismatchError) Error() string {
	return fmt.Sprintf("called %s on an %s value: %s", e.Method, e.Found, e.Value)
}

func (e *UnwrapMismatchError) Is(target error) bool {
	return target == ErrUnwrapMismatch
}

// Result holds either a success value or an error value.
type Result[T, E any] struct {
	value T
	err   E
	isErr bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isErr: true}
}

// From lifts a Go (value, error) pair. A non-nil err wins over v.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Unwrap returns the success value.
// It panics with an *UnwrapMismatchError if r is an Err.
func (r Result[T, E]) Unwrap() T {
	v, err := r.TryUnwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// TryUnwrap is the non-panicking variant of Unwrap.
func (r Result[T, E]) TryUnwrap() (T, error) {
	if r.isErr {
		var zero T
		return zero, &UnwrapMismatchError{
			Method: "Unwrap",
			Found:  "Err",
			Value:  encode.Display(r.err),
		}
	}
	return r.value, nil
}

// UnwrapErr returns the error value.
// It panics with an *UnwrapMismatchError if r is an Ok.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		panic(&UnwrapMismatchError{
			Method: "UnwrapErr",
			Found:  "Ok",
			Value:  encode.Display(r.value),
		})
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isErr {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value, or fn applied to the error.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.isErr {
		return fn(r.err)
	}
	return r.value
}

// Unpack returns both sides; the inactive one is its zero value.
func (r Result[T, E]) Unpack() (T, E) {
	return r.value, r.err
}

func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map transforms the success value. An Err passes through with the same error.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr transforms the error value. An Ok passes through with the same value.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.isErr {
		return Err[T](fn(r.err))
	}
	return Ok[T, F](r.value)
}

func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// ToOption drops the error side.
func ToOption[T, E any](r Result[T, E]) option.Option[T] {
	if r.isErr {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// FromOption turns None into Err(e).
func FromOption[T, E any](o option.Option[T], e E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T](e)
}
