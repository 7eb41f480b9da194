//go:build !ulog_nostd

package ulog

// std is the process-wide default logger. It starts silent, wired to the
// platform's natural console (stdout on hosts, machine.Serial on TinyGo);
// raise its level to start logging. Build with -tags ulog_nostd to remove
// it together with the package-level functions below.
var std = New(Config{Sink: defaultSink()})

// Default returns the package-level logger.
func Default() *Logger { return std }

// Configure sets the default logger's threshold, sink and tag visibility.
func Configure(level Level, sink Sink, showLevel bool) {
	std.Configure(level, sink, showLevel)
}

// SetLevel changes the default logger's threshold.
func SetLevel(level Level) { std.SetLevel(level) }

// GetLevel returns the default logger's threshold.
func GetLevel() Level { return std.GetLevel() }

// SetShowLevel controls the default logger's severity tag.
func SetShowLevel(show bool) { std.SetShowLevel(show) }

// GetShowLevel reports whether the default logger writes severity tags.
func GetShowLevel() bool { return std.GetShowLevel() }

// SetPrefix installs a prefix hook on the default logger.
func SetPrefix(h Hook) { std.SetPrefix(h) }

// SetSuffix installs a suffix hook on the default logger.
func SetSuffix(h Hook) { std.SetSuffix(h) }

// SetSink replaces the default logger's destination.
func SetSink(s Sink) { std.SetSink(s) }

// Fatal logs through the default logger at LevelFatal.
func Fatal(format string, args ...any) { std.Fatal(format, args...) }

// Error logs through the default logger at LevelError.
func Error(format string, args ...any) { std.Error(format, args...) }

// Warning logs through the default logger at LevelWarning.
func Warning(format string, args ...any) { std.Warning(format, args...) }

// Notice logs through the default logger at LevelNotice.
func Notice(format string, args ...any) { std.Notice(format, args...) }

// Trace logs through the default logger at LevelTrace.
func Trace(format string, args ...any) { std.Trace(format, args...) }

// Verbose logs through the default logger at LevelVerbose.
func Verbose(format string, args ...any) { std.Verbose(format, args...) }
