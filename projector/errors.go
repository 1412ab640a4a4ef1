package projector

import (
	"errors"
	"fmt"
)

// TransportError indicates that the bus or the power line failed.
// The driver never retries; the caller decides.
type TransportError struct {
	// Op is the failed operation ("send", "receive", "power on", "power off")
	Op string

	// Opcode is the command opcode for sends
	Opcode byte

	// Err is the underlying transport error
	Err error
}

func (e *TransportError) Error() string {
	if e.Op == "send" {
		return fmt.Sprintf("transport %s 0x%02X: %v", e.Op, e.Opcode, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError returns true if err is or wraps a TransportError.
func IsTransportError(err error) bool {
	var terr *TransportError
	return errors.As(err, &terr)
}

// StateError indicates an operation that is not valid in the current state.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s not allowed in state %s", e.Op, e.State)
}
