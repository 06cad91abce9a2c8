package iterkit

import (
	"go.llib.dev/scriptkit/errorkit"
	"go.llib.dev/scriptkit/option"
)

// Collect is a terminal operation that evaluates every pending stage over the
// entire source and materializes the results into an ordered slice.
// Collecting an unbounded iterator without a Take stage fails with
// ErrUnboundedCollection. The iterator is closed afterwards.
func (it *Iterator[T]) Collect() (vs []T, rErr error) {
	if it.isUnbounded() {
		return nil, ErrUnboundedCollection
	}
	defer errorkit.Finish(&rErr, it.Close)
	vs = make([]T, 0)
	for {
		v, ok := it.pull()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return vs, nil
}

// CollectSet is a terminal operation like Iterator.Collect,
// but materializes the results with set semantics:
// duplicates eliminated, encounter order not preserved.
func CollectSet[T comparable](it *Iterator[T]) (vs map[T]struct{}, rErr error) {
	if it.isUnbounded() {
		return nil, ErrUnboundedCollection
	}
	defer errorkit.Finish(&rErr, it.Close)
	vs = make(map[T]struct{})
	for {
		v, ok := it.pull()
		if !ok {
			break
		}
		vs[v] = struct{}{}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return vs, nil
}

// Count is a terminal operation that consumes the chain and
// returns the number of elements that passed every stage.
func (it *Iterator[T]) Count() (n int, rErr error) {
	if it.isUnbounded() {
		return 0, ErrUnboundedCollection
	}
	defer errorkit.Finish(&rErr, it.Close)
	for {
		if _, ok := it.pull(); !ok {
			break
		}
		n++
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

// First is a terminal operation that consumes at most one element,
// returning None when the chain turned out to be empty.
// First works on unbounded iterators as well.
func (it *Iterator[T]) First() (_ option.Option[T], rErr error) {
	defer errorkit.Finish(&rErr, it.Close)
	v, ok := it.pull()
	if !ok {
		if err := it.Err(); err != nil {
			return option.None[T](), err
		}
		return option.None[T](), nil
	}
	return option.Some(v), nil
}
