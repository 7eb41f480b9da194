//go:build tinygo

package ulog

import (
	"machine"
)

// defaultSink is the destination of the package-level logger: the board's
// default serial interface. Configure machine.Serial's baud rate in main
// before raising the level.
func defaultSink() Sink {
	return machine.Serial
}
