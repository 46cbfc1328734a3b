package adalight

import (
	"fmt"
	"strings"
)

// This file contains (un)marshallers for the enum types used in
// adalight, allowing config files and JSON front-ends to use string
// values instead of raw ints.

// ---- type State int

var stateNames = [...]string{
	Disconnected:    "Disconnected",
	Connected:       "Connected",
	WriteError:      "WriteError",
	UnexpectedError: "UnexpectedError",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func (s State) MarshalJSON() ([]byte, error) {
	b, err := s.MarshalText()
	if err == nil {
		b = []byte(fmt.Sprintf("\"%s\"", string(b)))
	}
	return b, err
}

func (s *State) UnmarshalJSON(data []byte) error {
	dataLength := len(data)
	if dataLength < 2 || data[0] != '"' || data[dataLength-1] != '"' {
		return fmt.Errorf("State.UnmarshalJSON: invalid JSON provided")
	}
	return s.UnmarshalText(data[1 : dataLength-1])
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(b []byte) error {
	str := string(b)
	for i, v := range stateNames {
		if strings.EqualFold(v, str) {
			*s = State(i)
			return nil
		}
	}
	return fmt.Errorf("cannot unmarshal \"%s\" to State. Is it mispelled?", str)
}

// ---- type Format int

var formatNames = [...]string{
	Grid:  "grid",
	Edges: "edges",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

func (f Format) MarshalJSON() ([]byte, error) {
	b, err := f.MarshalText()
	if err == nil {
		b = []byte(fmt.Sprintf("\"%s\"", string(b)))
	}
	return b, err
}

func (f *Format) UnmarshalJSON(data []byte) error {
	dataLength := len(data)
	if dataLength < 2 || data[0] != '"' || data[dataLength-1] != '"' {
		return fmt.Errorf("Format.UnmarshalJSON: invalid JSON provided")
	}
	return f.UnmarshalText(data[1 : dataLength-1])
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(b []byte) error {
	str := string(b)
	for i, v := range formatNames {
		if strings.EqualFold(v, str) {
			*f = Format(i)
			return nil
		}
	}
	return fmt.Errorf("cannot unmarshal \"%s\" to Format. Is it mispelled?", str)
}
