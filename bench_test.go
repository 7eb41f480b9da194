//go:build !ulog_disable

package ulog

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// --- Fixtures ---

func newDiscardLogger(level Level) *Logger {
	return New(Config{Level: level, Sink: WriterSink(io.Discard)})
}

func newZapSugar(level zapcore.Level) *zap.SugaredLogger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level)
	return zap.New(core).Sugar()
}

func newLogrusLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return l
}

func newZerologLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(io.Discard).With().Timestamp().Logger().Level(level)
}

// --- Own paths ---

func BenchmarkNotice(b *testing.B) {
	l := newDiscardLogger(LevelVerbose)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Notice("uptime=%d ok=%t", 1234, true)
	}
}

func BenchmarkSpecifiers(b *testing.B) {
	l := New(Config{Level: LevelVerbose, Sink: WriterSink(io.Discard), HideLevel: true})
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Verbose("d=%d x=%X f=%D s=%s t=%t", 42, 255, 3.14, "str", true)
	}
}

func BenchmarkSuppressed(b *testing.B) {
	l := newDiscardLogger(LevelError)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Verbose("dropped %d", 1)
	}
}

// --- The same line through other loggers ---

func BenchmarkCompetitive_FormattedLine(b *testing.B) {
	b.Run("ulog", func(b *testing.B) {
		l := newDiscardLogger(LevelVerbose)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Notice("request handled in %d ms", 42)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapSugar(zap.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request handled in %d ms", 42)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Infof("request handled in %d ms", 42)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.DebugLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().Msgf("request handled in %d ms", 42)
		}
	})
}

func BenchmarkCompetitive_SuppressedLevel(b *testing.B) {
	b.Run("ulog", func(b *testing.B) {
		l := newDiscardLogger(LevelError)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Verbose("should be skipped %d", 1)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapSugar(zap.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %d", 1)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger(logrus.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debugf("should be skipped %d", 1)
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger(zerolog.ErrorLevel)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Debug().Msgf("should be skipped %d", 1)
		}
	})
}
