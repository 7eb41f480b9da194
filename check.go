package ulog

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrBadSpecifier = errors.New("unknown conversion specifier")
	ErrArgCount     = errors.New("argument count mismatch")
	ErrArgType      = errors.New("argument type mismatch")
)

// CheckFormat validates a format string against its arguments without
// writing anything. The logging methods never run this check; call it from
// tests or behind a debug switch to surface the mistakes the permissive
// interpreter swallows. It reports the first problem found.
func CheckFormat(format string, args ...any) error {
	argIdx := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 == len(format) {
			return fmt.Errorf("%w: %w: format ends inside a conversion", ErrPkg, ErrBadSpecifier)
		}
		i++
		spec := format[i]
		if spec == '%' {
			continue
		}
		if !knownSpecifier(spec) {
			return fmt.Errorf("%w: %w: %%%c at byte %d", ErrPkg, ErrBadSpecifier, spec, i)
		}
		if argIdx >= len(args) {
			return fmt.Errorf("%w: %w: no argument for %%%c", ErrPkg, ErrArgCount, spec)
		}
		if !argMatches(spec, args[argIdx]) {
			return fmt.Errorf("%w: %w: %%%c cannot render %T", ErrPkg, ErrArgType, spec, args[argIdx])
		}
		argIdx++
	}
	if argIdx < len(args) {
		return fmt.Errorf("%w: %w: %d argument(s) left over", ErrPkg, ErrArgCount, len(args)-argIdx)
	}
	return nil
}

// argMatches mirrors the interpreter's acceptance rules exactly.
func argMatches(spec byte, arg any) bool {
	switch spec {
	case 's', 'P':
		switch arg.(type) {
		case string, []byte, error:
			return true
		}
	case 'S':
		switch arg.(type) {
		case string, fmt.Stringer:
			return true
		}
	case 'I':
		switch v := arg.(type) {
		case [4]byte:
			return true
		case []byte:
			return len(v) == 4
		}
	case 'd', 'i', 'l', 'u', 'x', 'X', 'b', 'B':
		_, ok := toUint64(arg)
		return ok
	case 'D', 'F':
		switch arg.(type) {
		case float64, float32:
			return true
		}
	case 'c':
		switch v := arg.(type) {
		case byte, rune, int:
			return true
		case string:
			r, size := utf8.DecodeRuneInString(v)
			return size == len(v) && r != utf8.RuneError
		}
	case 't', 'T':
		_, ok := boolValue(arg)
		return ok
	}
	return false
}
