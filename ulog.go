// Package ulog is a lightweight leveled logger for microcontrollers and
// embedded Linux hosts. Messages are rendered through a printf-style format
// string and written byte by byte to a configurable Sink (a serial port,
// a buffer, any io.Writer), gated by a runtime threshold. The rendering
// path performs no heap allocation, so it is safe to use from tight loops
// on TinyGo targets.
//
// Format strings may contain the following wildcards, each starting with
// a percent sign:
//
//	%s	string, []byte or error
//	%S	fmt.Stringer
//	%P	same as %s
//	%I	4-byte address, printed as a dotted quad
//	%d, %i	integer, decimal
//	%l	long integer, decimal
//	%u	unsigned integer, decimal
//	%x, %X	integer, hexadecimal (%X adds the 0x prefix)
//	%b, %B	integer, binary (%B adds the 0b prefix)
//	%D, %F	float, two decimal places
//	%c	single character
//	%t	boolean, printed as T or F
//	%T	boolean, printed as true or false
//	%%	literal percent sign
//
// A wildcard whose argument is missing or of an unsuitable type renders
// nothing; an unknown wildcard is consumed silently. CheckFormat reports
// such mistakes explicitly for callers that want them surfaced.
//
// Building with -tags ulog_disable compiles all logging machinery out.
// Building with -tags ulog_nostd removes the package-level default logger.
package ulog

import (
	"errors"
	"io"
	"sync"
)

var ErrPkg = errors.New("ulog")

// CR is the line terminator for log messages. Messages carry no implicit
// terminator; append CR (or embed it in the format string) to end a line.
const CR = "\n"

// Hook is an optional callback invoked with the sink immediately before or
// after a message body. A hook must not log through the same logger.
type Hook func(s Sink)

// Config holds the configuration for a Logger.
// The zero value is a silent logger with no sink that shows level tags.
type Config struct {
	// Level is the threshold: messages up to and including this level are
	// written. Out-of-range values are clamped.
	// Defaults to LevelSilent if not provided.
	Level Level
	// Sink is the output destination. A nil Sink drops all output.
	Sink Sink
	// HideLevel disables the single-letter severity tag ("E: ", "N: ", ...)
	// written before each message. The tag is written by default.
	HideLevel bool
	// Prefix is called with the sink before each message body.
	// Optional.
	Prefix Hook
	// Suffix is called with the sink after each message body.
	// Optional.
	Suffix Hook
}

// Logger gates and renders log messages onto a single Sink. All methods are
// safe for concurrent use; each message is written completely before the
// call returns, with no buffering.
type Logger struct {
	mu        sync.Mutex
	level     Level
	hideLevel bool
	sink      Sink
	sinkW     io.Writer
	sinkSW    io.StringWriter
	prefix    Hook
	suffix    Hook
	scratch   [72]byte // Longest single rendering (64 binary digits) + margin
}

// New creates a Logger from the given configuration. A nil Config.Sink is
// legal and leaves the logger dropping everything it is asked to write.
func New(c Config) *Logger {
	l := &Logger{}
	l.level = clampLevel(c.Level)
	l.hideLevel = c.HideLevel
	l.prefix = c.Prefix
	l.suffix = c.Suffix
	l.setSink(c.Sink)
	return l
}

// Configure sets the threshold, sink and tag visibility in one call.
// This method is concurrent safe.
func (l *Logger) Configure(level Level, sink Sink, showLevel bool) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = clampLevel(level)
	l.hideLevel = !showLevel
	l.setSink(sink)
}

// SetLevel changes the threshold. Out-of-range values are clamped, never
// rejected.
// This method is concurrent safe.
func (l *Logger) SetLevel(level Level) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = clampLevel(level)
}

// GetLevel returns the current threshold.
// This method is concurrent safe.
func (l *Logger) GetLevel() Level {
	if !enabled {
		return LevelSilent
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetShowLevel controls whether the single-letter severity tag is written
// before each message.
// This method is concurrent safe.
func (l *Logger) SetShowLevel(show bool) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hideLevel = !show
}

// GetShowLevel reports whether the severity tag is written.
// This method is concurrent safe.
func (l *Logger) GetShowLevel() bool {
	if !enabled {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.hideLevel
}

// SetPrefix installs a hook called before each message. A nil hook clears it.
// This method is concurrent safe.
func (l *Logger) SetPrefix(h Hook) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = h
}

// SetSuffix installs a hook called after each message. A nil hook clears it.
// This method is concurrent safe.
func (l *Logger) SetSuffix(h Hook) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.suffix = h
}

// SetSink replaces the output destination. Nothing is flushed or drained;
// bytes already written belong to the previous sink.
// This method is concurrent safe.
func (l *Logger) SetSink(s Sink) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setSink(s)
}

// setSink stores the sink and derives its optional fast-path capabilities.
// Call with lock held.
func (l *Logger) setSink(s Sink) {
	l.sink = s
	l.sinkW, _ = s.(io.Writer)
	l.sinkSW, _ = s.(io.StringWriter)
}

// Fatal logs a message at LevelFatal.
// This method is concurrent safe.
func (l *Logger) Fatal(format string, args ...any) {
	l.printLevel(LevelFatal, format, args)
}

// Error logs a message at LevelError.
// This method is concurrent safe.
func (l *Logger) Error(format string, args ...any) {
	l.printLevel(LevelError, format, args)
}

// Warning logs a message at LevelWarning.
// This method is concurrent safe.
func (l *Logger) Warning(format string, args ...any) {
	l.printLevel(LevelWarning, format, args)
}

// Notice logs a message at LevelNotice.
// This method is concurrent safe.
func (l *Logger) Notice(format string, args ...any) {
	l.printLevel(LevelNotice, format, args)
}

// Trace logs a message at LevelTrace.
// This method is concurrent safe.
func (l *Logger) Trace(format string, args ...any) {
	l.printLevel(LevelTrace, format, args)
}

// Verbose logs a message at LevelVerbose.
// This method is concurrent safe.
func (l *Logger) Verbose(format string, args ...any) {
	l.printLevel(LevelVerbose, format, args)
}

// printLevel is the emission path shared by the six entry points: gate,
// prefix hook, severity tag, body, suffix hook. A gated call returns before
// any side effect, hooks included.
func (l *Logger) printLevel(lvl Level, format string, args []any) {
	if !enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if lvl > l.level || l.sink == nil {
		return
	}

	if l.prefix != nil {
		l.prefix(l.sink)
	}

	if !l.hideLevel {
		_ = l.sink.WriteByte(levelLetters[lvl-1])
		l.writeString(": ")
	}

	l.printFormat(format, args)

	if l.suffix != nil {
		l.suffix(l.sink)
	}
}

// writeString writes s without allocating. Call with lock held and a
// non-nil sink.
func (l *Logger) writeString(s string) {
	if l.sinkSW != nil {
		_, _ = l.sinkSW.WriteString(s)
		return
	}
	for i := 0; i < len(s); i++ {
		_ = l.sink.WriteByte(s[i])
	}
}

// writeBytes writes b. Call with lock held and a non-nil sink.
func (l *Logger) writeBytes(b []byte) {
	if l.sinkW != nil {
		_, _ = l.sinkW.Write(b)
		return
	}
	for _, c := range b {
		_ = l.sink.WriteByte(c)
	}
}
