package ulog

import (
	"io"
)

// Sink is the byte-output capability log messages are rendered to.
// machine.Serial on TinyGo targets and *bytes.Buffer satisfy it directly.
// If a Sink also implements io.Writer or io.StringWriter, the logger uses
// those for multi-byte runs instead of writing byte by byte.
type Sink interface {
	// WriteByte writes a single byte to the destination.
	WriteByte(c byte) error
}

// WriterSink adapts an io.Writer to the Sink interface.
func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

// writerSink wraps an io.Writer to satisfy the Sink interface.
type writerSink struct {
	w   io.Writer
	buf [1]byte
}

func (s *writerSink) WriteByte(c byte) error {
	s.buf[0] = c
	_, err := s.w.Write(s.buf[:])
	return err
}

func (s *writerSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *writerSink) WriteString(str string) (int, error) {
	if sw, ok := s.w.(io.StringWriter); ok {
		return sw.WriteString(str)
	}
	return s.w.Write([]byte(str))
}
