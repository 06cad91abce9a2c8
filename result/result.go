// Package result provides a Result type to express the outcome of a fallible
// operation as a value, carrying either a success value or an error descriptor.
//
// A Result is either Ok, holding a value, or Err, holding an error value.
// Nothing is captured automatically: the producer of an outcome decides at the
// boundary whether it constructs Ok or Err. The error side is generic, so it can
// carry a plain message, a Go error, or any richer descriptor.
package result

import (
	"fmt"

	"go.llib.dev/scriptkit/errorkit"
	"go.llib.dev/scriptkit/option"
)

// ErrWrongVariantAccess is returned when the success value of an Err result
// or the error value of an Ok result is accessed.
const ErrWrongVariantAccess errorkit.Error = "result: access on the wrong variant"

// Result represents either a success value of type T or an error value of type E.
// The zero value of Result is an Err holding E's zero value.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a Result holding a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a Result holding an error value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// From adapts a conventional Go (value, error) pair into a Result.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// IsOkAnd reports whether the result is Ok and its value is accepted by fn.
func (r Result[T, E]) IsOkAnd(fn func(T) bool) bool {
	return r.ok && fn(r.value)
}

// IsErrAnd reports whether the result is Err and its error value is accepted by fn.
func (r Result[T, E]) IsErrAnd(fn func(E) bool) bool {
	return !r.ok && fn(r.err)
}

// Get returns the success value.
// Accessing the success value of an Err result is a caller mistake,
// and reported with ErrWrongVariantAccess.
func (r Result[T, E]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, ErrWrongVariantAccess.Wrapf("Get on Err(%v)", r.err)
	}
	return r.value, nil
}

// GetErr returns the error value.
// Accessing the error value of an Ok result is reported with ErrWrongVariantAccess.
func (r Result[T, E]) GetErr() (E, error) {
	if r.ok {
		var zero E
		return zero, ErrWrongVariantAccess.Wrapf("GetErr on Ok(%v)", r.value)
	}
	return r.err, nil
}

// MustGet returns the success value, and panics with ErrWrongVariantAccess on an Err result.
func (r Result[T, E]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetErr returns the error value, and panics with ErrWrongVariantAccess on an Ok result.
func (r Result[T, E]) MustGetErr() E {
	e, err := r.GetErr()
	if err != nil {
		panic(err)
	}
	return e
}

// Expect returns the success value, and panics with the given message on an Err result.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(ErrWrongVariantAccess.Wrapf("%s: %v", msg, r.err))
	}
	return r.value
}

// ExpectErr returns the error value, and panics with the given message on an Ok result.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(ErrWrongVariantAccess.Wrapf("%s: %v", msg, r.value))
	}
	return r.err
}

// GetOr returns the success value, or the given default on an Err result.
func (r Result[T, E]) GetOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// GetOrElse returns the success value, or the result of fn applied to the error value.
func (r Result[T, E]) GetOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// Ok returns the success value as an Option, None on an Err result.
func (r Result[T, E]) Ok() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// ErrValue returns the error value as an Option, None on an Ok result.
func (r Result[T, E]) ErrValue() option.Option[E] {
	if r.ok {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// Inspect calls fn with the success value when present, then returns the result unchanged.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the error value when present, then returns the result unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
