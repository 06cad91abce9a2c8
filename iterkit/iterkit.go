// Package iterkit provides a lazily evaluated, chainable Iterator over any
// finite or infinite sequence source.
//
// An Iterator carries its source together with a list of pending
// transformation stages. Registering a transformation with Map, Filter or
// Take never touches the source; the stages run in registration order only
// when a terminal operation (Collect, Join, Count, First) consumes the chain.
//
// Iterators are not safe for concurrent consumption. Each instance, including
// the ones produced by Copy, is meant to be drained by a single goroutine.
package iterkit

// Iterator is a lazy sequence of T values.
// Use FromSlice, FromFunc, Generate, Range or FromPull to construct one.
type Iterator[T any] struct {
	src    source[T]
	stages []stage[T]
}

type stageKind uint8

const (
	stageMap stageKind = iota
	stageFilter
	stageTake
)

// stage is a staged transformation descriptor,
// evaluated by terminal operations in registration order.
type stage[T any] struct {
	kind  stageKind
	mapFn func(T) T
	keep  func(T) bool
	limit int
	taken int
}

// Map registers a transformation stage that replaces each element with fn(element).
// The stage is evaluated lazily; the receiver is not consumed.
// For transformations that change the element type, use the package level Map function.
func (it *Iterator[T]) Map(fn func(T) T) *Iterator[T] {
	return it.derive(stage[T]{kind: stageMap, mapFn: fn})
}

// Filter registers a stage that keeps only the elements accepted by the predicate.
// The stage is evaluated lazily; the receiver is not consumed.
func (it *Iterator[T]) Filter(keep func(T) bool) *Iterator[T] {
	return it.derive(stage[T]{kind: stageFilter, keep: keep})
}

// Take registers a stage that limits the chain to at most n elements,
// making terminal operations on unbounded sources possible.
func (it *Iterator[T]) Take(n int) *Iterator[T] {
	return it.derive(stage[T]{kind: stageTake, limit: n})
}

func (it *Iterator[T]) derive(st stage[T]) *Iterator[T] {
	stages := make([]stage[T], len(it.stages), len(it.stages)+1)
	copy(stages, it.stages)
	return &Iterator[T]{src: it.src, stages: append(stages, st)}
}

// pull retrieves the next element that passes every registered stage.
// An exhausted take stage ends the sequence before the source is consulted,
// so the source is never advanced past the elements a terminal operation needs.
func (it *Iterator[T]) pull() (T, bool) {
	var zero T
	for i := range it.stages {
		if st := &it.stages[i]; st.kind == stageTake && st.limit <= st.taken {
			return zero, false
		}
	}
pulling:
	for {
		v, ok := it.src.next()
		if !ok {
			return zero, false
		}
		for i := range it.stages {
			st := &it.stages[i]
			switch st.kind {
			case stageMap:
				v = st.mapFn(v)
			case stageFilter:
				if !st.keep(v) {
					continue pulling
				}
			case stageTake:
				if st.limit <= st.taken {
					return zero, false
				}
				st.taken++
			}
		}
		return v, true
	}
}

func (it *Iterator[T]) isUnbounded() bool {
	if !it.src.unbounded() {
		return false
	}
	for _, st := range it.stages {
		if st.kind == stageTake {
			return false
		}
	}
	return true
}

// Err returns the error cause of the underlying source, if any.
func (it *Iterator[T]) Err() error {
	return it.src.err()
}

// Close releases the underlying source when it holds a resource.
// Terminal operations close the iterator on their own.
func (it *Iterator[T]) Close() error {
	return it.src.close()
}
