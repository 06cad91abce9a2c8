package iterkit

// Map returns an Iterator producing fn applied to each element of the chain,
// for transformations that change the element type. Like the Map method,
// nothing is consumed until a terminal operation runs.
func Map[In, Out any](it *Iterator[In], fn func(In) Out) *Iterator[Out] {
	return &Iterator[Out]{src: &mappedSource[In, Out]{from: it, fn: fn}}
}

// mappedSource adapts a whole upstream chain into a source of another type.
type mappedSource[In, Out any] struct {
	from *Iterator[In]
	fn   func(In) Out
}

func (s *mappedSource[In, Out]) next() (Out, bool) {
	v, ok := s.from.pull()
	if !ok {
		var zero Out
		return zero, false
	}
	return s.fn(v), true
}

func (s *mappedSource[In, Out]) err() error      { return s.from.Err() }
func (s *mappedSource[In, Out]) close() error    { return s.from.Close() }
func (s *mappedSource[In, Out]) unbounded() bool { return s.from.isUnbounded() }

func (s *mappedSource[In, Out]) fork() (source[Out], source[Out], error) {
	dup, err := s.from.Copy()
	if err != nil {
		return nil, nil, err
	}
	return s, &mappedSource[In, Out]{from: dup, fn: s.fn}, nil
}
