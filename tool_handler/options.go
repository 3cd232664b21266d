package toolhandler

import (
	"context"

	"github.com/w-h-a/timekit/toolkit"
)

type Option func(*Options)

type Options struct {
	Toolkit *toolkit.Toolkit
	Context context.Context
}

func WithToolkit(tk *toolkit.Toolkit) Option {
	return func(o *Options) {
		o.Toolkit = tk
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Context: context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Toolkit == nil {
		options.Toolkit = toolkit.New()
	}
	return options
}
