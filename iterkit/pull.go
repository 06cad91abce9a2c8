package iterkit

import "io"

// Pull define a separate object that encapsulates accessing and traversing an
// aggregate object. Clients use it to traverse an aggregate without knowing
// its representation. Interface design inspirited by
// https://golang.org/pkg/encoding/json/#Decoder
type Pull[V any] interface {
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false
	// and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
	// Err return the error cause.
	Err() error
	// Closer is required to make it able to cancel iterators where resources
	// are being used behind the scene, for all other cases it should return nil.
	io.Closer
}

// FromPull returns an Iterator over a pull style iterator, commonly one that
// reads an external resource. Pull backed iterators are single-use: once
// advanced, Copy fails with ErrNonReplayableSource.
func FromPull[T any](p Pull[T]) *Iterator[T] {
	return &Iterator[T]{src: &pullSource[T]{iter: p}}
}

type pullSource[T any] struct {
	iter    Pull[T]
	started bool
	done    bool
}

func (s *pullSource[T]) next() (T, bool) {
	s.started = true
	if s.done || !s.iter.Next() {
		s.done = true
		var zero T
		return zero, false
	}
	return s.iter.Value(), true
}

func (s *pullSource[T]) err() error      { return s.iter.Err() }
func (s *pullSource[T]) close() error    { return s.iter.Close() }
func (s *pullSource[T]) unbounded() bool { return false }

func (s *pullSource[T]) fork() (source[T], source[T], error) {
	if s.started {
		return nil, nil, ErrNonReplayableSource
	}
	tee := &teeState[T]{
		pull: func() (T, bool) {
			if !s.iter.Next() {
				var zero T
				return zero, false
			}
			return s.iter.Value(), true
		},
		errFn:   s.iter.Err,
		closeFn: s.iter.Close,
	}
	return tee.handle(), tee.handle(), nil
}
