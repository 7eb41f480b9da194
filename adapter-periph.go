//go:build !tinygo

package ulog

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// UARTConfig holds the configuration for a serial port sink on Linux systems.
type UARTConfig struct {
	// PortName is the registry name or device path of the serial port
	// (e.g., "/dev/ttyAMA0").
	// Defaults to the first available port if not provided.
	PortName string
	// Baud is the transmission speed in bits per second.
	// Defaults to 115200 if not provided.
	Baud int
}

// UARTSink writes log output to a serial port using periph.io.
// It implements Sink, io.Writer and io.Closer.
type UARTSink struct {
	port uart.PortCloser
	conn conn.Conn
	buf  [1]byte
}

// NewUART opens a serial port and wraps it as a log sink for Linux systems.
// It applies configuration defaults, initializes the periph.io host and
// configures the port for 8N1 framing with no flow control.
// It returns the initialized sink or an error if the port cannot be opened.
func NewUART(c UARTConfig) (*UARTSink, error) {
	// 1. Initialize periph.io host
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	// 2. Open the serial port (an empty name selects the first available)
	p, err := uartreg.Open(c.PortName)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port: %w", err)
	}

	// 3. Default Baud
	if c.Baud == 0 {
		c.Baud = 115200
	}

	// 4. Create the connection (8N1)
	cn, err := p.Connect(physic.Frequency(c.Baud)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to create UART connection: %w", err)
	}

	return &UARTSink{port: p, conn: cn}, nil
}

// WriteByte sends a single byte over the serial port.
func (u *UARTSink) WriteByte(c byte) error {
	u.buf[0] = c
	return u.conn.Tx(u.buf[:], nil)
}

// Write sends the whole buffer over the serial port in one transaction.
func (u *UARTSink) Write(p []byte) (int, error) {
	if err := u.conn.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close releases the underlying serial port.
func (u *UARTSink) Close() error {
	return u.port.Close()
}
