package options

import (
	"github.com/go-logr/logr"
)

// Options represents the options for analyzing a disk image
type Options struct {
	Logger logr.Logger
}

// Option represents a function that modifies the Options
type Option func(*Options)

// WithLogger sets the Logger used during analysis. The library is silent by
// default (logr.Discard()); tools pass a real sink here for verbose output.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
