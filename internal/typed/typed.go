// Package typed converts dynamically typed values back to static types.
package typed

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrUnexpectedType = errors.New("unexpected type")

// As asserts raw to T. A nil raw yields the zero T when T can hold nil.
func As[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		if Nilable(reflect.TypeFor[T]()) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: <nil> for %v", ErrUnexpectedType, reflect.TypeFor[T]())
	}
	val, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T for %v", ErrUnexpectedType, raw, reflect.TypeFor[T]())
	}
	return val, nil
}

// MustAs is the panic-on-failure variant of As.
// Use when a mismatch is a programming error.
func MustAs[T any](raw any) T {
	res, err := As[T](raw)
	if err != nil {
		panic(err)
	}
	return res
}

// Nilable reports whether values of t can be nil.
func Nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}
