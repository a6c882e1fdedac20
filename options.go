package jsonattr

// Options holds configuration settings for an Accessor.
type Options struct {
	Delimiter string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithDelimiter sets the separator used when a path is given in its string
// form. If not set, or set to the empty string, paths are split on ".".
func WithDelimiter(delimiter string) Option {
	return func(opts *Options) {
		opts.Delimiter = delimiter
	}
}
