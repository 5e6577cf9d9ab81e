package result

import (
	"errors"

	"go.uber.org/multierr"
)

// ErrNilError stands in for an Err that carries a nil error.
var ErrNilError = errors.New("Err holding a nil error")

// Collect gathers the success values of rs in order. If any result failed,
// the returned Err combines every error with multierr.
func Collect[T any](rs ...Result[T, error]) Result[[]T, error] {
	var errs error
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if !r.isErr {
			values = append(values, r.value)
			continue
		}
		err := r.err
		if err == nil {
			err = ErrNilError
		}
		errs = multierr.Append(errs, err)
	}
	if errs != nil {
		return Err[[]T](errs)
	}
	return Ok[[]T, error](values)
}
