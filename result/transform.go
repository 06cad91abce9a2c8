package result

import "go.llib.dev/scriptkit/option"

// Map returns a Result holding fn applied to the success value,
// leaving an Err result untouched.
//
// Map and the other combinators below are package functions
// because Go methods can't introduce new type parameters.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapErr returns a Result with fn applied to the error value,
// leaving an Ok result untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// MapOr returns fn applied to the success value, or the given default on an Err result.
func MapOr[T, U, E any](r Result[T, E], def U, fn func(T) U) U {
	if !r.ok {
		return def
	}
	return fn(r.value)
}

// AndThen returns fn applied to the success value, propagating an Err result.
// Unlike Map, fn itself decides the outcome.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return fn(r.value)
}

// OrElse returns fn applied to the error value, propagating an Ok result.
func OrElse[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// OkOr turns an Option into a Result, using the given error value for the None case.
func OkOr[T, E any](o option.Option[T], e E) Result[T, E] {
	v, err := o.Get()
	if err != nil {
		return Err[T, E](e)
	}
	return Ok[T, E](v)
}

// OkOrElse turns an Option into a Result, calling fn for the error value in the None case.
func OkOrElse[T, E any](o option.Option[T], fn func() E) Result[T, E] {
	v, err := o.Get()
	if err != nil {
		return Err[T, E](fn())
	}
	return Ok[T, E](v)
}
