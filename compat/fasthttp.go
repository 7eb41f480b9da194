package compat

import (
	"fmt"
	"strings"

	"github.com/michcald/ulog"
)

// FastHTTPAdapter wraps a ulog.Logger to implement fasthttp's Logger
// interface.
type FastHTTPAdapter struct {
	logger        *ulog.Logger
	defaultLevel  ulog.Level
	levelDetector func(string) ulog.Level
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *ulog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  ulog.LevelNotice,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when the detector finds no indicator.
func WithDefaultLevel(level ulog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect the level from message
// content. A nil detector disables detection.
func WithLevelDetector(detector func(string) ulog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != ulog.LevelSilent {
			level = detected
		}
	}

	switch level {
	case ulog.LevelFatal:
		a.logger.Fatal("%s"+ulog.CR, msg)
	case ulog.LevelError:
		a.logger.Error("%s"+ulog.CR, msg)
	case ulog.LevelWarning:
		a.logger.Warning("%s"+ulog.CR, msg)
	case ulog.LevelTrace:
		a.logger.Trace("%s"+ulog.CR, msg)
	case ulog.LevelVerbose:
		a.logger.Verbose("%s"+ulog.CR, msg)
	default:
		a.logger.Notice("%s"+ulog.CR, msg)
	}
}

// DetectLogLevel attempts to detect a severity from message content. It
// returns LevelSilent when no indicator is found.
func DetectLogLevel(msg string) ulog.Level {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return ulog.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return ulog.LevelWarning
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return ulog.LevelVerbose
	}

	return ulog.LevelSilent
}
