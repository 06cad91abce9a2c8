// Package errorkit provides error primitives for the rest of the module.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is an error implementation that can be declared at the const level.
//
//	const ErrSomething errorkit.Error = "something went wrong"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Wrap bundles a cause together with this Error.
// The returned error matches both sides with errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return wrapped{err: err, cause: cause}
}

// Wrapf wraps a formatted cause, see Wrap.
func (err Error) Wrapf(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type wrapped struct {
	err   Error
	cause error
}

func (w wrapped) Error() string {
	return fmt.Sprintf("%s: %s", w.err, w.cause)
}

func (w wrapped) Is(target error) bool {
	return errors.Is(w.err, target) || errors.Is(w.cause, target)
}

func (w wrapped) As(target any) bool {
	return errors.As(w.err, target) || errors.As(w.cause, target)
}

// Merge combines multiple error values into a single error.
// Nil values are ignored, and a nil error is returned when no error was given.
func Merge(errs ...error) error {
	var vs []error
	for _, err := range errs {
		if err != nil {
			vs = append(vs, err)
		}
	}
	switch len(vs) {
	case 0:
		return nil
	case 1:
		return vs[0]
	default:
		return errors.Join(vs...)
	}
}

// Finish is a defer helper that merges the outcome of a cleanup function
// into the returned error of the caller.
//
//	defer errorkit.Finish(&rErr, file.Close)
func Finish(rErr *error, blk func() error) {
	*rErr = Merge(*rErr, blk())
}
