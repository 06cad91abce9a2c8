// Package iokit provides IO helpers, most notably a scoped capture of the
// process standard output and standard error streams.
package iokit

import (
	"bytes"
	"io"
	"os"
	"sync"

	"go.llib.dev/scriptkit/errorkit"
)

// ErrCaptureActive is returned when a Capturer is started twice without a Stop in between.
const ErrCaptureActive errorkit.Error = "iokit: capture already active"

// Option configures a Capturer.
type Option func(*Capturer)

// WithoutStdout leaves os.Stdout untouched, capturing only standard error.
func WithoutStdout() Option {
	return func(c *Capturer) { c.catchStdout = false }
}

// WithoutStderr leaves os.Stderr untouched, capturing only standard output.
func WithoutStderr() Option {
	return func(c *Capturer) { c.catchStderr = false }
}

// New returns a Capturer that will capture both streams unless configured otherwise.
func New(opts ...Option) *Capturer {
	c := &Capturer{catchStdout: true, catchStderr: true}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Capturer redirects os.Stdout and/or os.Stderr into in-memory buffers
// between Start and Stop. The original streams are always restored by Stop,
// no matter how the captured scope ended.
//
// A Capturer is not safe for concurrent Start/Stop calls;
// the captured text accessors are safe to use after Stop returned.
type Capturer struct {
	catchStdout bool
	catchStderr bool

	stdout bytes.Buffer
	stderr bytes.Buffer

	active  bool
	drains  sync.WaitGroup
	restore []func() error
}

// Start replaces the configured standard streams with pipes that drain into
// the Capturer's buffers. Every Start must be paired with a Stop.
func (c *Capturer) Start() error {
	if c.active {
		return ErrCaptureActive
	}
	if c.catchStdout {
		if err := c.redirect(&os.Stdout, &c.stdout); err != nil {
			return errorkit.Merge(err, c.Stop())
		}
	}
	if c.catchStderr {
		if err := c.redirect(&os.Stderr, &c.stderr); err != nil {
			return errorkit.Merge(err, c.Stop())
		}
	}
	c.active = true
	return nil
}

func (c *Capturer) redirect(std **os.File, buf *bytes.Buffer) error {
	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	orig := *std
	*std = w
	c.drains.Add(1)
	go func() {
		defer c.drains.Done()
		_, _ = io.Copy(buf, r)
		_ = r.Close()
	}()
	c.restore = append(c.restore, func() error {
		*std = orig
		return w.Close()
	})
	return nil
}

// Stop restores the original streams and waits until every byte written
// during the captured scope reached the buffers. Stop is idempotent.
func (c *Capturer) Stop() error {
	var errs []error
	for _, restore := range c.restore {
		errs = append(errs, restore())
	}
	c.restore = nil
	c.drains.Wait()
	c.active = false
	return errorkit.Merge(errs...)
}

// Stdout returns the text captured from the standard output stream so far.
func (c *Capturer) Stdout() string { return c.stdout.String() }

// Stderr returns the text captured from the standard error stream so far.
func (c *Capturer) Stderr() string { return c.stderr.String() }

// Capture runs fn with the configured streams captured, restoring them on
// every exit path, a propagated panic included. The returned Capturer exposes
// the accumulated text of each stream, and the returned error is the error of
// fn, unless tearing down the capture failed.
func Capture(fn func() error, opts ...Option) (_ *Capturer, rErr error) {
	c := New(opts...)
	if err := c.Start(); err != nil {
		return nil, err
	}
	defer errorkit.Finish(&rErr, c.Stop)
	return c, fn()
}
