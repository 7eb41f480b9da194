// Package compat adapts a ulog.Logger to the logging interfaces of common
// network frameworks. The interfaces are satisfied structurally, so this
// package does not import the frameworks themselves.
package compat

import (
	"fmt"
	"os"

	"github.com/michcald/ulog"
)

// GnetAdapter wraps a ulog.Logger to implement gnet's logging.Logger
// interface.
type GnetAdapter struct {
	logger       *ulog.Logger
	fatalHandler func(msg string)
}

// NewGnetAdapter creates a new gnet-compatible logger adapter.
func NewGnetAdapter(logger *ulog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at verbose level with fmt-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Verbose("%s"+ulog.CR, fmt.Sprintf(format, args...))
}

// Infof logs at notice level with fmt-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Notice("%s"+ulog.CR, fmt.Sprintf(format, args...))
}

// Warnf logs at warning level with fmt-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Warning("%s"+ulog.CR, fmt.Sprintf(format, args...))
}

// Errorf logs at error level with fmt-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Error("%s"+ulog.CR, fmt.Sprintf(format, args...))
}

// Fatalf logs at fatal level and triggers the fatal handler. The message is
// fully written before the handler runs; the logger does not buffer.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Fatal("%s"+ulog.CR, msg)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
