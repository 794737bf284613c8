// Package ropzap logs rop.Result values with zap without changing them.
package ropzap

import (
	"github.com/ib-77/result/pkg/rop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type resultMarshaler[S, F any] struct {
	result rop.Result[S, F]
}

func (m resultMarshaler[S, F]) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if s, ok := m.result.GetSuccess(); ok {
		enc.AddString("variant", "success")
		return enc.AddReflected("value", s)
	}
	f, _ := m.result.GetFailure()
	enc.AddString("variant", "failure")
	if err, ok := any(f).(error); ok && err != nil {
		enc.AddString("value", err.Error())
		return nil
	}
	return enc.AddReflected("value", f)
}

// Object renders r as a nested {variant, value} object field
func Object[S, F any](key string, r rop.Result[S, F]) zap.Field {
	rop.Require(r, "result")
	return zap.Object(key, resultMarshaler[S, F]{result: r})
}

// Tee writes one entry for r, at the success or failure level, and returns r unchanged
func Tee[S, F any](logger *zap.Logger, msg string, r rop.Result[S, F], opts ...Option) rop.Result[S, F] {
	rop.Require(logger, "logger")
	rop.Require(r, "result")

	o := newOptions(opts...)
	level := o.SuccessLevel
	if r.HasFailure() {
		level = o.FailureLevel
	}

	if ce := logger.Check(level, msg); ce != nil {
		ce.Write(Object(o.Key, r))
	}
	return r
}

// LogSuccess returns an action for Result.IfSuccess
func LogSuccess[S any](logger *zap.Logger, msg string, opts ...Option) func(S) {
	rop.Require(logger, "logger")
	o := newOptions(opts...)

	return func(s S) {
		if ce := logger.Check(o.SuccessLevel, msg); ce != nil {
			ce.Write(zap.Any(o.Key, s))
		}
	}
}

// LogFailure returns an action for Result.IfFailure
func LogFailure[F any](logger *zap.Logger, msg string, opts ...Option) func(F) {
	rop.Require(logger, "logger")
	o := newOptions(opts...)

	return func(f F) {
		if ce := logger.Check(o.FailureLevel, msg); ce != nil {
			ce.Write(zap.Any(o.Key, f))
		}
	}
}
