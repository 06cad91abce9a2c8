// Package option provides an Option type to express an optional value
// without resorting to nil pointers or sentinel values.
//
// An Option is either Some, holding a value, or None, holding nothing.
// Options are immutable value types and safe to share between readers.
package option

import (
	"fmt"

	"go.llib.dev/scriptkit/errorkit"
)

// ErrEmptyValueAccess is returned when the value of a None option is accessed.
const ErrEmptyValueAccess errorkit.Error = "option: value access on a None option"

// Option represents an optional value of type T.
// The zero value of Option is None.
type Option[T any] struct {
	value  T
	filled bool
}

// Some returns an Option holding the given value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, filled: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.filled }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.filled }

// IsSomeAnd reports whether the option holds a value for which fn returns true.
func (o Option[T]) IsSomeAnd(fn func(T) bool) bool {
	return o.filled && fn(o.value)
}

// IsNoneOr reports whether the option is empty or holds a value for which fn returns true.
func (o Option[T]) IsNoneOr(fn func(T) bool) bool {
	return !o.filled || fn(o.value)
}

// Get returns the held value.
// Accessing the value of a None option is a caller mistake,
// and reported with ErrEmptyValueAccess.
func (o Option[T]) Get() (T, error) {
	if !o.filled {
		var zero T
		return zero, ErrEmptyValueAccess
	}
	return o.value, nil
}

// MustGet returns the held value, and panics with ErrEmptyValueAccess on a None option.
func (o Option[T]) MustGet() T {
	if !o.filled {
		panic(ErrEmptyValueAccess)
	}
	return o.value
}

// Expect returns the held value, and panics with the given message on a None option.
func (o Option[T]) Expect(msg string) T {
	if !o.filled {
		panic(ErrEmptyValueAccess.Wrapf("%s", msg))
	}
	return o.value
}

// GetOr returns the held value, or the given default on a None option.
func (o Option[T]) GetOr(def T) T {
	if !o.filled {
		return def
	}
	return o.value
}

// GetOrElse returns the held value, or the result of fn on a None option.
func (o Option[T]) GetOrElse(fn func() T) T {
	if !o.filled {
		return fn()
	}
	return o.value
}

// Filter returns the option itself when it holds a value accepted by fn, else None.
func (o Option[T]) Filter(fn func(T) bool) Option[T] {
	if o.filled && fn(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the option itself when it holds a value, else the given alternative.
func (o Option[T]) Or(oth Option[T]) Option[T] {
	if o.filled {
		return o
	}
	return oth
}

// OrElse returns the option itself when it holds a value, else the result of fn.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.filled {
		return o
	}
	return fn()
}

// Xor returns whichever of the two options holds a value,
// or None when both or neither does.
func (o Option[T]) Xor(oth Option[T]) Option[T] {
	switch {
	case o.filled && oth.filled:
		return None[T]()
	case o.filled:
		return o
	default:
		return oth
	}
}

// Inspect calls fn with the held value when present, then returns the option unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.filled {
		fn(o.value)
	}
	return o
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.filled {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
