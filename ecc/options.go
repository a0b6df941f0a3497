package ecc

import (
	"io"

	"github.com/sirupsen/logrus"
)

// discard is shared by every Options built without a logger.
var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// Options holds the settings shared by all code constructors.
type Options struct {
	Logger logrus.FieldLogger
}

type Option func(*Options)

// WithLogger sends construction diagnostics to logger. Without it diagnostics are discarded.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = discard
	}
	return o
}
