package iterkit

// Copy returns an independent Iterator over the same remaining logical
// elements and the same pending stages. Consuming the copy never advances the
// receiver and vice versa.
//
// Replayable sources (FromSlice, Range) fork in place. A single-use source
// (FromFunc, Generate, FromPull) that was not advanced yet is teed through a
// shared lazy buffer; once advanced, Copy fails with ErrNonReplayableSource.
func (it *Iterator[T]) Copy() (*Iterator[T], error) {
	self, dup, err := it.src.fork()
	if err != nil {
		return nil, err
	}
	it.src = self
	stages := make([]stage[T], len(it.stages))
	copy(stages, it.stages)
	return &Iterator[T]{src: dup, stages: stages}, nil
}
