package filterbank

import "github.com/charmbracelet/log"

// Option configures header decoding.
type Option func(*options)

type options struct {
	logger *log.Logger
}

func defaultOptions() *options {
	return &options{}
}

// WithLogger logs every decoded element at debug level, and repeated
// keywords at warn level. Decoding is silent without it.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
