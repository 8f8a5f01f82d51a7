package bitvec

import "log/slog"

type options struct {
	logger *Logger
}

// Option configures BitVector construction.
type Option func(*options)

// WithLogger configures structured logging for rejected checked operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bitvec.NewJSONLogger(slog.LevelDebug)
//	v := bitvec.New(1024, bitvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: noopLogger,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = noopLogger
	}
	return o
}
