package iterkit

import "go.llib.dev/scriptkit/errorkit"

const (
	// ErrEmptyReduction is returned when a reduction runs over zero elements,
	// since no identity element can be assumed for an arbitrary operation.
	ErrEmptyReduction errorkit.Error = "iterkit: reduction over an empty iterator"
	// ErrUnboundedCollection is returned when a terminal operation would have to
	// materialize an unbounded iterator that has no limiting stage.
	ErrUnboundedCollection errorkit.Error = "iterkit: collecting an unbounded iterator"
	// ErrNonReplayableSource is returned when copying an iterator whose
	// single-use source was already advanced.
	ErrNonReplayableSource errorkit.Error = "iterkit: copy of a consumed single-use source"
)
