//go:build !tinygo

package ulog

import (
	"os"
)

// defaultSink is the destination of the package-level logger: standard
// output on hosts.
func defaultSink() Sink {
	return WriterSink(os.Stdout)
}
