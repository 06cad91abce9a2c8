package iterkit

// source is the consumable sequence behind an Iterator.
type source[T any] interface {
	next() (T, bool)
	err() error
	close() error
	unbounded() bool
	// fork returns a replacement source for the receiver's owner
	// and an independent source at the same logical position.
	fork() (self, dup source[T], _ error)
}

// FromSlice returns an Iterator over the elements of the given slice.
// Slice backed iterators are replayable, Copy always succeeds on them.
func FromSlice[T any](vs []T) *Iterator[T] {
	return &Iterator[T]{src: &sliceSource[T]{items: vs}}
}

type sliceSource[T any] struct {
	items []T
	index int
}

func (s *sliceSource[T]) next() (T, bool) {
	if len(s.items) <= s.index {
		var zero T
		return zero, false
	}
	v := s.items[s.index]
	s.index++
	return v, true
}

func (s *sliceSource[T]) err() error      { return nil }
func (s *sliceSource[T]) close() error    { return nil }
func (s *sliceSource[T]) unbounded() bool { return false }

func (s *sliceSource[T]) fork() (source[T], source[T], error) {
	return s, &sliceSource[T]{items: s.items, index: s.index}, nil
}

// Range returns an Iterator over the integers of the half-open range
// [start, stop), advancing by step. A negative step counts downwards.
// Range panics on a zero step.
func Range(start, stop, step int) *Iterator[int] {
	if step == 0 {
		panic("iterkit: Range with zero step")
	}
	return &Iterator[int]{src: &rangeSource{cur: start, stop: stop, step: step}}
}

type rangeSource struct {
	cur  int
	stop int
	step int
}

func (s *rangeSource) next() (int, bool) {
	if s.step > 0 && s.stop <= s.cur {
		return 0, false
	}
	if s.step < 0 && s.cur <= s.stop {
		return 0, false
	}
	v := s.cur
	s.cur += s.step
	return v, true
}

func (s *rangeSource) err() error      { return nil }
func (s *rangeSource) close() error    { return nil }
func (s *rangeSource) unbounded() bool { return false }

func (s *rangeSource) fork() (source[int], source[int], error) {
	dup := *s
	return s, &dup, nil
}

// FromFunc returns an Iterator over a generator function.
// The generator is consulted lazily; returning ok=false ends the sequence.
// Generator backed iterators are single-use: once advanced, Copy fails
// with ErrNonReplayableSource.
func FromFunc[T any](next func() (T, bool)) *Iterator[T] {
	return &Iterator[T]{src: &funcSource[T]{fn: next}}
}

// Generate returns an Iterator over an endless generator function.
// The resulting iterator is unbounded: terminal operations fail with
// ErrUnboundedCollection unless a Take stage limits the chain.
func Generate[T any](fn func() T) *Iterator[T] {
	return &Iterator[T]{src: &funcSource[T]{
		fn:       func() (T, bool) { return fn(), true },
		infinite: true,
	}}
}

type funcSource[T any] struct {
	fn       func() (T, bool)
	infinite bool
	started  bool
	done     bool
}

func (s *funcSource[T]) next() (T, bool) {
	s.started = true
	if s.done {
		var zero T
		return zero, false
	}
	v, ok := s.fn()
	if !ok {
		s.done = true
		var zero T
		return zero, false
	}
	return v, true
}

func (s *funcSource[T]) err() error      { return nil }
func (s *funcSource[T]) close() error    { return nil }
func (s *funcSource[T]) unbounded() bool { return s.infinite }

func (s *funcSource[T]) fork() (source[T], source[T], error) {
	if s.started {
		return nil, nil, ErrNonReplayableSource
	}
	tee := &teeState[T]{pull: s.fn, infinite: s.infinite}
	return tee.handle(), tee.handle(), nil
}

// teeState lets two or more source handles consume a single-use sequence
// independently by buffering the elements that not all handles saw yet.
// The buffer only grows on demand, so unbounded sequences stay lazy.
type teeState[T any] struct {
	pull     func() (T, bool)
	errFn    func() error
	closeFn  func() error
	infinite bool

	buf    []T
	done   bool
	refs   int
	closed bool
}

func (t *teeState[T]) handle() *teeHandle[T] {
	t.refs++
	return &teeHandle[T]{state: t}
}

func (t *teeState[T]) at(i int) (T, bool) {
	for len(t.buf) <= i && !t.done {
		v, ok := t.pull()
		if !ok {
			t.done = true
			break
		}
		t.buf = append(t.buf, v)
	}
	if i < len(t.buf) {
		return t.buf[i], true
	}
	var zero T
	return zero, false
}

// release closes the shared sequence once the last handle is done with it.
func (t *teeState[T]) release() error {
	t.refs--
	if t.refs > 0 || t.closed || t.closeFn == nil {
		return nil
	}
	t.closed = true
	return t.closeFn()
}

type teeHandle[T any] struct {
	state  *teeState[T]
	pos    int
	closed bool
}

func (h *teeHandle[T]) next() (T, bool) {
	v, ok := h.state.at(h.pos)
	if ok {
		h.pos++
	}
	return v, ok
}

func (h *teeHandle[T]) err() error {
	if h.state.errFn == nil {
		return nil
	}
	return h.state.errFn()
}

func (h *teeHandle[T]) close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.state.release()
}

func (h *teeHandle[T]) unbounded() bool { return h.state.infinite }

func (h *teeHandle[T]) fork() (source[T], source[T], error) {
	dup := h.state.handle()
	dup.pos = h.pos
	return h, dup, nil
}
