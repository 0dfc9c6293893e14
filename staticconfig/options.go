package staticconfig

import "github.com/rs/zerolog"

type options struct {
	logger    zerolog.Logger
	format    Format
	strict    bool
	env       bool
	envPrefix string
	environ   map[string]string
}

// Option configures Decode and Load.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		logger: zerolog.Nop(),
		env:    true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used to report loads and ignored keys.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithFormat forces a decoder instead of choosing one by extension.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithStrict rejects keys in the file that do not map to a field.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithEnvPrefix prepends prefix to every env tag during the environment overlay.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithEnvironment overlays values from environ instead of the process environment.
func WithEnvironment(environ map[string]string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// WithoutEnv skips the environment overlay.
func WithoutEnv() Option {
	return func(o *options) {
		o.env = false
	}
}
