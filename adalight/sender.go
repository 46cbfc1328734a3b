package adalight

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rkjdid/util"

	"github.com/tvled/ledoff/logger"
)

var ErrNoConnection = errors.New("no serial connection")

type State int

const (
	Disconnected State = iota
	Connected
	WriteError
	UnexpectedError
)

// ConnError is a fault on the serial link itself (open, write, drain),
// as opposed to a bad request.
type ConnError struct {
	Op  string
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("serial %s: %s", e.Op, e.Err)
}

func (e *ConnError) Unwrap() error {
	return e.Err
}

// Config tunes the delivery loop.
type Config struct {
	Repeats     int           // frames written per command
	SettleDelay util.Duration // wait after open before the first write
	FrameDelay  util.Duration // wait after each flushed frame
}

var DefaultConfig = Config{
	Repeats:     3,
	SettleDelay: util.Duration(100 * time.Millisecond),
	FrameDelay:  util.Duration(50 * time.Millisecond),
}

// Sender delivers Adalight frames over one serial connection. The
// firmware offers no acknowledgment, so every command is written
// Repeats times unconditionally: serial links to microcontrollers are
// commonly lossy right after connect, and redundancy raises delivery
// probability without a read path.
type Sender struct {
	sync.Mutex
	Conn  *SerialConnection
	cfg   *Config
	log   *logger.Log
	state State
}

func NewSender(conn *SerialConnection, cfg *Config, log *logger.Log) *Sender {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if log == nil {
		log = logger.Discard()
	}
	state := Disconnected
	if conn != nil {
		state = Connected
	}
	return &Sender{
		Conn:  conn,
		cfg:   cfg,
		log:   log,
		state: state,
	}
}

// TurnOff sends the all-black frame for ledCount LEDs.
func (s *Sender) TurnOff(ledCount int) error {
	if ledCount < 1 || ledCount > MaxLeds {
		return fmt.Errorf("led count %d out of range [1, %d]", ledCount, MaxLeds)
	}
	s.log.Debugf("turning off %d leds on %s", ledCount, s.path())
	return s.deliver(OffFrame(ledCount))
}

// SendColors drives one color per LED, in strip order.
func (s *Sender) SendColors(colors []Color) error {
	if len(colors) < 1 || len(colors) > MaxLeds {
		return fmt.Errorf("led count %d out of range [1, %d]", len(colors), MaxLeds)
	}
	return s.deliver(Frame(colors))
}

func (s *Sender) State() State {
	if s == nil {
		return Disconnected
	}
	return s.state
}

func (s *Sender) Close() error {
	if s.Conn == nil {
		return nil
	}
	return s.Conn.Close()
}

// deliver writes frame cfg.Repeats times, draining the port and pausing
// after each write. It never reads. The repetition is not error
// recovery, a fault on any write aborts the remaining repeats.
func (s *Sender) deliver(frame []byte) error {
	s.Lock()
	defer s.Unlock()
	if s.Conn == nil {
		s.state = Disconnected
		return ErrNoConnection
	}

	// let the link settle before any transfer
	time.Sleep(time.Duration(s.cfg.SettleDelay))

	// clear stale bytes from a prior session
	if err := s.Conn.ResetInputBuffer(); err != nil {
		return s.fault("reset input buffer", err)
	}
	if err := s.Conn.ResetOutputBuffer(); err != nil {
		return s.fault("reset output buffer", err)
	}

	for i := 0; i < s.cfg.Repeats; i++ {
		if err := s.writeFull(frame); err != nil {
			return err
		}
		if err := s.Conn.Drain(); err != nil {
			return s.fault("drain", err)
		}
		s.log.Debugf("frame %d/%d flushed (%d bytes)", i+1, s.cfg.Repeats, len(frame))
		time.Sleep(time.Duration(s.cfg.FrameDelay))
	}
	s.state = Connected
	return nil
}

// writeFull pushes frame to the port, resuming on partial writes.
func (s *Sender) writeFull(frame []byte) error {
	for n := 0; n < len(frame); {
		i, err := s.Conn.Write(frame[n:])
		if err != nil {
			return s.fault("write", err)
		}
		n += i
	}
	return nil
}

func (s *Sender) fault(op string, err error) error {
	s.state = WriteError
	return &ConnError{Op: op, Err: err}
}

func (s *Sender) path() string {
	if s.Conn == nil {
		return "<nil>"
	}
	return s.Conn.Path()
}
