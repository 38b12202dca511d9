package nixie

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the outcome of the most recent evaluation.
type Status uint8

const (
	Success Status = iota
	Overflow
	DivideByZero
	DomainError
	UnknownOperation
)

var (
	ErrOverflow         = errors.New("overflow")
	ErrDivideByZero     = errors.New("divide by zero")
	ErrDomain           = errors.New("invalid domain")
	ErrUnknownOperation = errors.New("unknown operation")
)

// String returns the label a display shows for s.
func (s Status) String() string {
	if err := s.Err(); err != nil {
		return err.Error()
	}
	if s == Success {
		return "success"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Err returns the sentinel error for a failure status, or nil on success.
func (s Status) Err() error {
	switch s {
	case Overflow:
		return ErrOverflow
	case DivideByZero:
		return ErrDivideByZero
	case DomainError:
		return ErrDomain
	case UnknownOperation:
		return ErrUnknownOperation
	default:
		return nil
	}
}

// AngleUnit selects how sin, cos and tan interpret their operand.
type AngleUnit uint8

const (
	Degrees AngleUnit = iota
	Radians
)

func (u AngleUnit) String() string {
	switch u {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		return fmt.Sprintf("angle(%d)", uint8(u))
	}
}

// ParseAngleUnit accepts "deg", "degrees", "rad" and "radians".
func ParseAngleUnit(s string) (AngleUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degrees":
		return Degrees, nil
	case "rad", "radians":
		return Radians, nil
	default:
		return Degrees, fmt.Errorf("unknown angle unit %q", s)
	}
}

func (u AngleUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *AngleUnit) UnmarshalText(text []byte) error {
	v, err := ParseAngleUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
