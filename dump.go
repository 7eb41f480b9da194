//go:build !tinygo

package ulog

import (
	"bytes"

	"github.com/davecgh/go-spew/spew"
)

// dumper renders structured values for Dump. Compact settings keep the
// output readable on a serial console.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a deep rendering of v at the given level, following the same
// gate and hook sequence as the formatted entry points. The label, when not
// empty, precedes the rendering. Dump allocates; keep it out of hot paths.
// This method is concurrent safe.
func (l *Logger) Dump(lvl Level, label string, v any) {
	if !enabled {
		return
	}
	if lvl <= LevelSilent {
		return
	}
	lvl = clampLevel(lvl)

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

	if label != "" {
		l.writeString(label)
		l.writeString(": ")
	}

	var b bytes.Buffer
	dumper.Fdump(&b, v)
	l.writeBytes(bytes.TrimSpace(b.Bytes()))

	if l.suffix != nil {
		l.suffix(l.sink)
	}
}
