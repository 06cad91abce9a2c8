package option

// Map returns an Option holding fn applied to the held value,
// or None when the option is empty.
//
// Map is a package function because Go methods can't introduce new type parameters.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen returns fn applied to the held value, or None when the option is empty.
// Unlike Map, fn itself decides the presence of the outcome.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return fn(o.value)
}

// Pair groups two values held together by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up two options, yielding None unless both hold a value.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	return ZipWith(a, b, func(av T, bv U) Pair[T, U] {
		return Pair[T, U]{First: av, Second: bv}
	})
}

// ZipWith combines the values of two options with fn, yielding None unless both hold a value.
func ZipWith[T, U, V any](a Option[T], b Option[U], fn func(T, U) V) Option[V] {
	if a.IsNone() || b.IsNone() {
		return None[V]()
	}
	return Some(fn(a.value, b.value))
}

// Flatten removes one level of option nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if o.IsNone() {
		return None[T]()
	}
	return o.value
}
