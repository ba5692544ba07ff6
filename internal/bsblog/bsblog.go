// Package bsblog is the trace logger used by cmd/bsbcat. The pure codec
// packages (bsberr, datatype, field, fieldvalue, frame) never log —
// logging is an ambient concern of the example binary, not of the
// library.
package bsblog

import (
	"log"
	"os"
	"sync/atomic"
)

// Provider is the RFC5424-flavoured subset of log levels the BSB
// tooling cares about: Debug for frame-by-frame trace, Warn for
// recoverable parse failures (resync), Error for I/O failures.
type Provider interface {
	Error(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Logger gates calls to a Provider behind an atomic on/off switch, so
// trace logging can be toggled at runtime (e.g. by a CLI flag) without
// touching call sites.
type Logger struct {
	provider Provider
	has      uint32 // 1: enabled, 0: disabled
}

// New creates a Logger writing to stdout under prefix, disabled by
// default.
func New(prefix string) Logger {
	return Logger{provider: defaultProvider{log.New(os.Stdout, prefix, log.LstdFlags)}}
}

// SetMode enables or disables log output.
func (l *Logger) SetMode(enable bool) {
	if enable {
		atomic.StoreUint32(&l.has, 1)
	} else {
		atomic.StoreUint32(&l.has, 0)
	}
}

// SetProvider swaps the underlying Provider.
func (l *Logger) SetProvider(p Provider) {
	if p != nil {
		l.provider = p
	}
}

// Error logs an ERROR-level message.
func (l Logger) Error(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Error(format, v...)
	}
}

// Warn logs a WARN-level message.
func (l Logger) Warn(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Warn(format, v...)
	}
}

// Debug logs a DEBUG-level message.
func (l Logger) Debug(format string, v ...interface{}) {
	if atomic.LoadUint32(&l.has) == 1 {
		l.provider.Debug(format, v...)
	}
}

type defaultProvider struct {
	*log.Logger
}

var _ Provider = (*defaultProvider)(nil)

func (p defaultProvider) Error(format string, v ...interface{}) { p.Printf("[E]: "+format, v...) }
func (p defaultProvider) Warn(format string, v ...interface{})  { p.Printf("[W]: "+format, v...) }
func (p defaultProvider) Debug(format string, v ...interface{}) { p.Printf("[D]: "+format, v...) }
