package iterkit

import "go.llib.dev/scriptkit/errorkit"

// Join is a terminal operation that left-folds the chain with op, pairwise in
// encounter order, seeded with the first element. Joining an empty iterator
// fails with ErrEmptyReduction, since no identity element can be assumed for
// an arbitrary operation. The iterator is closed afterwards.
func (it *Iterator[T]) Join(op func(T, T) T) (_ T, rErr error) {
	var zero T
	if it.isUnbounded() {
		return zero, ErrUnboundedCollection
	}
	defer errorkit.Finish(&rErr, it.Close)
	acc, ok := it.pull()
	if !ok {
		if err := it.Err(); err != nil {
			return zero, err
		}
		return zero, ErrEmptyReduction
	}
	for {
		v, ok := it.pull()
		if !ok {
			break
		}
		acc = op(acc, v)
	}
	if err := it.Err(); err != nil {
		return zero, err
	}
	return acc, nil
}

// Addable is the constraint of element types Sum can fold with the + operator.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Sum joins the chain with addition, the most common reduction.
func Sum[T Addable](it *Iterator[T]) (T, error) {
	return it.Join(func(a, b T) T { return a + b })
}
