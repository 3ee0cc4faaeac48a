package log

import "context"

type nopLogger struct{}

// NewNop returns a Logger that discards everything. Used by the CLI and by tests.
func NewNop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, ...any)           {}
func (nopLogger) Debugf(context.Context, string, ...any)  {}
func (nopLogger) Info(context.Context, ...any)            {}
func (nopLogger) Infof(context.Context, string, ...any)   {}
func (nopLogger) Warn(context.Context, ...any)            {}
func (nopLogger) Warnf(context.Context, string, ...any)   {}
func (nopLogger) Error(context.Context, ...any)           {}
func (nopLogger) Errorf(context.Context, string, ...any)  {}
func (nopLogger) DPanic(context.Context, ...any)          {}
func (nopLogger) DPanicf(context.Context, string, ...any) {}
func (nopLogger) Panic(context.Context, ...any)           {}
func (nopLogger) Panicf(context.Context, string, ...any)  {}
func (nopLogger) Fatal(context.Context, ...any)           {}
func (nopLogger) Fatalf(context.Context, string, ...any)  {}
