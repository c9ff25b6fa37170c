// Package serial talks to the board's USB serial port from the host.
package serial

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Port represents a serial port.
// Implementations: native serial (github.com/tarm/serial) and mocks in tests.
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (ignored by USB CDC except for the 1200 baud touch)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// TouchBaud is the rate that makes the UNO R4 bootloader take over
const TouchBaud = 1200

// ErrNilConfig is returned when Open is called without a config
var ErrNilConfig = errors.New("serial: config cannot be nil")

// DefaultConfig returns the configuration for the board's console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100, // ms
	}
}

// MonitorConfig returns the configuration for reading the console. Reads
// block: with a timeout, tarm/serial reports a quiet line as io.EOF and
// the monitor would stop at the first pause.
func MonitorConfig(device string) *Config {
	cfg := DefaultConfig(device)
	cfg.ReadTimeout = 0
	return cfg
}

// Opener opens a port. Open is the native implementation.
type Opener func(cfg *Config) (Port, error)

// Touch opens device at 1200 baud and closes it again, which resets the
// board into its bootloader
func Touch(open Opener, device string) error {
	cfg := DefaultConfig(device)
	cfg.Baud = TouchBaud

	p, err := open(cfg)
	if err != nil {
		return fmt.Errorf("touch %s: %w", device, err)
	}
	if err := p.Close(); err != nil {
		return fmt.Errorf("touch %s: close: %w", device, err)
	}
	return nil
}

// Monitor discards anything buffered on p, then copies lines read from p
// to w until p returns an error. io.EOF ends the copy cleanly. p should be
// opened with MonitorConfig.
func Monitor(p Port, w io.Writer) error {
	if err := p.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	scanner := bufio.NewScanner(p)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
