package jsonkit

// Option configures the reading and writing helpers of the package.
type Option func(*config)

type config struct {
	strict bool
	format Format
	less   func(a, b Record) bool
}

func toConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Strict makes malformed records fail with a *MalformedRecordError
// instead of being skipped with a logged warning.
func Strict() Option {
	return func(c *config) { c.strict = true }
}

// WithFormat overrides the file layout that would otherwise
// be derived from the file extension.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithSort orders the records with the given comparison before they are
// returned by Load or laid down by Write. The sort is stable.
func WithSort(less func(a, b Record) bool) Option {
	return func(c *config) { c.less = less }
}
