package adalight

import (
	"time"

	"go.bug.st/serial"
)

// DefaultSerialConfig is the 8N1 mode Adalight sketches expect, at the
// baud rate most of them ship with. InitialStatusBits holds DTR and RTS
// low on open so USB-serial adapters don't reset the controller into
// its bootloader, dropping the very frame we're about to send.
var DefaultSerialConfig = &serial.Mode{
	BaudRate:          115200,
	Parity:            serial.NoParity,
	DataBits:          8,
	StopBits:          serial.OneStopBit,
	InitialStatusBits: &serial.ModemOutputBits{RTS: false, DTR: false},
}

// DefaultReadTimeout bounds reads on the port. The tool never reads,
// this is purely defensive.
var DefaultReadTimeout = 2 * time.Second

// SerialConnection wraps an open serial port along with the path and
// mode it was opened with.
type SerialConnection struct {
	serial.Port
	path   string
	config *serial.Mode
}

func NewSerial(port serial.Port, config *serial.Mode, name string) *SerialConnection {
	return &SerialConnection{
		Port:   port,
		path:   name,
		config: config,
	}
}

// Path returns device name / path of serial port.
func (sc *SerialConnection) Path() string {
	return sc.path
}

// OpenPortName opens the named port with config (DefaultSerialConfig if
// nil), suppressing the reset-on-open modem line pulse and setting the
// defensive read timeout.
func OpenPortName(name string, config *serial.Mode) (*SerialConnection, error) {
	if config == nil {
		config = DefaultSerialConfig
	}
	mode := *config
	if mode.InitialStatusBits == nil {
		mode.InitialStatusBits = &serial.ModemOutputBits{RTS: false, DTR: false}
	}
	port, err := serial.Open(name, &mode)
	if err != nil {
		return nil, err
	}
	if err = port.SetReadTimeout(DefaultReadTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return NewSerial(port, &mode, name), nil
}
