package ropzap

import "go.uber.org/zap/zapcore"

const DefaultKey = "result"

type Options struct {
	SuccessLevel zapcore.Level
	FailureLevel zapcore.Level
	Key          string
}

type Option func(*Options)

func WithSuccessLevel(level zapcore.Level) Option {
	return func(o *Options) {
		o.SuccessLevel = level
	}
}

func WithFailureLevel(level zapcore.Level) Option {
	return func(o *Options) {
		o.FailureLevel = level
	}
}

// WithKey sets the field name the result is logged under
func WithKey(key string) Option {
	return func(o *Options) {
		o.Key = key
	}
}

func newOptions(opts ...Option) Options {
	o := Options{
		SuccessLevel: zapcore.DebugLevel,
		FailureLevel: zapcore.WarnLevel,
		Key:          DefaultKey,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
