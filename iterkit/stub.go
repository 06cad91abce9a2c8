package iterkit

// NewStub wraps a Pull iterator so tests can replace individual behaviors.
func NewStub[T any](p Pull[T]) *Stub[T] {
	return &Stub[T]{
		Pull:      p,
		StubNext:  p.Next,
		StubValue: p.Value,
		StubErr:   p.Err,
		StubClose: p.Close,
	}
}

// Stub is a Pull test double. Each behavior delegates to the wrapped Pull
// unless the corresponding Stub field is replaced.
type Stub[T any] struct {
	Pull      Pull[T]
	StubNext  func() bool
	StubValue func() T
	StubErr   func() error
	StubClose func() error
}

func (s *Stub[T]) Next() bool   { return s.StubNext() }
func (s *Stub[T]) Value() T     { return s.StubValue() }
func (s *Stub[T]) Err() error   { return s.StubErr() }
func (s *Stub[T]) Close() error { return s.StubClose() }

// SlicePull is a minimal Pull over a slice, mainly for tests that need a
// closeable pull iterator without a backing resource.
type SlicePull[T any] struct {
	Values []T

	index  int
	value  T
	closed bool
}

func (p *SlicePull[T]) Next() bool {
	if p.closed || len(p.Values) <= p.index {
		return false
	}
	p.value = p.Values[p.index]
	p.index++
	return true
}

func (p *SlicePull[T]) Value() T { return p.value }

func (p *SlicePull[T]) Err() error { return nil }

func (p *SlicePull[T]) Close() error {
	p.closed = true
	return nil
}
