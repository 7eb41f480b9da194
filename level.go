package ulog

import (
	"fmt"
	"strings"
)

// Level represents a message severity or a logger threshold.
// Higher values are more verbose: a message is written when its level is
// less than or equal to the logger's threshold.
type Level int8

const (
	// LevelSilent suppresses all output when used as a threshold.
	LevelSilent Level = iota
	// LevelFatal is for unrecoverable failures.
	LevelFatal
	// LevelError is for all errors.
	LevelError
	// LevelWarning is for errors and warnings.
	LevelWarning
	// LevelNotice is for errors, warnings and notices.
	LevelNotice
	// LevelTrace is for errors, warnings, notices and traces.
	LevelTrace
	// LevelVerbose enables all output.
	LevelVerbose
)

// levelLetters holds the single-letter tags written before a message body,
// indexed by level-1.
const levelLetters = "FEWNTV"

func (l Level) String() string {
	switch l {
	case LevelSilent:
		return "silent"
	case LevelFatal:
		return "fatal"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNotice:
		return "notice"
	case LevelTrace:
		return "trace"
	case LevelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseLevel converts a level name to its Level value.
// Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "silent":
		return LevelSilent, nil
	case "fatal":
		return LevelFatal, nil
	case "error":
		return LevelError, nil
	case "warning":
		return LevelWarning, nil
	case "notice":
		return LevelNotice, nil
	case "trace":
		return LevelTrace, nil
	case "verbose":
		return LevelVerbose, nil
	}
	return LevelSilent, fmt.Errorf("%w: unknown level %q", ErrPkg, s)
}

// clampLevel forces a threshold into the valid range. Out-of-range values
// are not an error.
func clampLevel(l Level) Level {
	if l < LevelSilent {
		return LevelSilent
	}
	if l > LevelVerbose {
		return LevelVerbose
	}
	return l
}
