package ulog

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// printFormat scans format left to right, copying ordinary bytes to the
// sink and dispatching wildcards. Single pass, one byte of lookahead, no
// recursion. Call with lock held and a non-nil sink.
func (l *Logger) printFormat(format string, args []any) {
	argIdx := 0
	start := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if start < i {
			l.writeString(format[start:i])
		}
		if i+1 == len(format) {
			// A lone trailing marker renders nothing
			return
		}
		i++
		spec := format[i]
		start = i + 1
		if spec == '%' {
			_ = l.sink.WriteByte('%')
			continue
		}
		if !knownSpecifier(spec) {
			// Unknown wildcards are consumed without output and without
			// pulling an argument
			continue
		}
		if argIdx < len(args) {
			l.printArg(spec, args[argIdx])
		}
		argIdx++
	}
	if start < len(format) {
		l.writeString(format[start:])
	}
}

func knownSpecifier(spec byte) bool {
	switch spec {
	case 's', 'S', 'P', 'I', 'd', 'i', 'D', 'F', 'x', 'X', 'b', 'B', 'l', 'u', 'c', 't', 'T':
		return true
	}
	return false
}

// printArg renders one argument according to its wildcard. Arguments of an
// unsuitable type render nothing.
func (l *Logger) printArg(spec byte, arg any) {
	switch spec {
	case 's', 'P':
		switch v := arg.(type) {
		case string:
			l.writeString(v)
		case []byte:
			l.writeBytes(v)
		case error:
			l.writeString(v.Error())
		}
	case 'S':
		switch v := arg.(type) {
		case string:
			l.writeString(v)
		case fmt.Stringer:
			l.writeString(v.String())
		}
	case 'I':
		switch v := arg.(type) {
		case [4]byte:
			l.printQuad(v)
		case []byte:
			if len(v) == 4 {
				l.printQuad([4]byte(v))
			}
		}
	case 'd', 'i', 'l':
		switch v := arg.(type) {
		case int:
			l.printInt(int64(v), 10)
		case int8:
			l.printInt(int64(v), 10)
		case int16:
			l.printInt(int64(v), 10)
		case int32:
			l.printInt(int64(v), 10)
		case int64:
			l.printInt(v, 10)
		case uint:
			l.printUint(uint64(v), 10)
		case uint8:
			l.printUint(uint64(v), 10)
		case uint16:
			l.printUint(uint64(v), 10)
		case uint32:
			l.printUint(uint64(v), 10)
		case uint64:
			l.printUint(v, 10)
		case uintptr:
			l.printUint(uint64(v), 10)
		}
	case 'u':
		if v, ok := toUint64(arg); ok {
			l.printUint(v, 10)
		}
	case 'x':
		if v, ok := toUint64(arg); ok {
			l.printUint(v, 16)
		}
	case 'X':
		if v, ok := toUint64(arg); ok {
			l.writeString("0x")
			l.printUint(v, 16)
		}
	case 'b':
		if v, ok := toUint64(arg); ok {
			l.printUint(v, 2)
		}
	case 'B':
		if v, ok := toUint64(arg); ok {
			l.writeString("0b")
			l.printUint(v, 2)
		}
	case 'D', 'F':
		switch v := arg.(type) {
		case float64:
			l.printFloat(v)
		case float32:
			l.printFloat(float64(v))
		}
	case 'c':
		switch v := arg.(type) {
		case byte:
			_ = l.sink.WriteByte(v)
		case rune:
			l.printRune(v)
		case int:
			l.printRune(rune(v))
		case string:
			r, size := utf8.DecodeRuneInString(v)
			if size == len(v) && r != utf8.RuneError {
				l.printRune(r)
			}
		}
	case 't':
		if v, ok := boolValue(arg); ok {
			if v {
				_ = l.sink.WriteByte('T')
			} else {
				_ = l.sink.WriteByte('F')
			}
		}
	case 'T':
		if v, ok := boolValue(arg); ok {
			if v {
				l.writeString("true")
			} else {
				l.writeString("false")
			}
		}
	}
}

func (l *Logger) printInt(v int64, base int) {
	l.writeBytes(strconv.AppendInt(l.scratch[:0], v, base))
}

func (l *Logger) printUint(v uint64, base int) {
	l.writeBytes(strconv.AppendUint(l.scratch[:0], v, base))
}

// printFloat renders with two decimal places.
func (l *Logger) printFloat(v float64) {
	l.writeBytes(strconv.AppendFloat(l.scratch[:0], v, 'f', 2, 64))
}

func (l *Logger) printRune(r rune) {
	l.writeBytes(utf8.AppendRune(l.scratch[:0], r))
}

// printQuad renders a 4-byte address as d.d.d.d.
func (l *Logger) printQuad(a [4]byte) {
	b := strconv.AppendUint(l.scratch[:0], uint64(a[0]), 10)
	for i := 1; i < 4; i++ {
		b = append(b, '.')
		b = strconv.AppendUint(b, uint64(a[i]), 10)
	}
	l.writeBytes(b)
}

// toUint64 normalizes any integer kind for the radix wildcards. Negative
// values keep their 64-bit two's complement representation.
func toUint64(arg any) (uint64, bool) {
	switch v := arg.(type) {
	case int:
		return uint64(v), true
	case int8:
		return uint64(v), true
	case int16:
		return uint64(v), true
	case int32:
		return uint64(v), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	}
	return 0, false
}

// boolValue applies the truth rule for %t and %T: booleans as themselves,
// integers true only when exactly 1.
func boolValue(arg any) (value, ok bool) {
	switch v := arg.(type) {
	case bool:
		return v, true
	case int:
		return v == 1, true
	case int8:
		return v == 1, true
	case int16:
		return v == 1, true
	case int32:
		return v == 1, true
	case int64:
		return v == 1, true
	case uint:
		return v == 1, true
	case uint8:
		return v == 1, true
	case uint16:
		return v == 1, true
	case uint32:
		return v == 1, true
	case uint64:
		return v == 1, true
	}
	return false, false
}
