package bitfield

var defaultLogger = NoopLogger()

type options struct {
	wordSize int
	logger   *Logger
	sink     ErrorSink
}

// Option configures copy behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. word-size-specific entry point variants).
type Option func(*options)

func resolveOptions(optFns []Option) options {
	opts := options{
		wordSize: 1,
		logger:   defaultLogger,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// WithWordSize configures the cursor word granularity in bytes. Offsets are
// normalized modulo 8*size and the working word is never narrower than the
// granularity. Must be a power of two in [1, 16]; the default of 1 places
// no restriction on field placement.
func WithWordSize(size int) Option {
	return func(o *options) {
		o.wordSize = size
	}
}

// WithLogger configures the logger used to report failed copies.
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = defaultLogger
		}
		o.logger = logger
	}
}

// WithErrorSink configures a callback invoked whenever a copy fails, in
// addition to logging. The sink receives the structured error record and a
// description of the failed operation.
func WithErrorSink(sink ErrorSink) Option {
	return func(o *options) {
		o.sink = sink
	}
}
