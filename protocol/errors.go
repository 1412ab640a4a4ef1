package protocol

import (
	"errors"
	"fmt"
)

// Frame validation errors.
var (
	// ErrShortFrame indicates a notification shorter than its header.
	ErrShortFrame = errors.New("frame too short")

	// ErrShortPayload indicates a payload too small for its fixed layout.
	ErrShortPayload = errors.New("payload too short")

	// ErrFrameTooLarge indicates a frame that does not fit the bounded buffer.
	ErrFrameTooLarge = errors.New("frame too large")
)

// ProtocolFault is a device-side fault reported by a notification.
type ProtocolFault struct {
	// Opcode is the notification that reported the fault
	Opcode byte

	// Code is the raw fault code from the status byte
	Code byte

	// Class is the decoded fault class
	Class FaultClass
}

func (e *ProtocolFault) Error() string {
	return fmt.Sprintf("device fault: %s (opcode 0x%02X, code 0x%02X)", e.Class, e.Opcode, e.Code)
}

// Recovered reports whether the device resumed operation on its own.
func (e *ProtocolFault) Recovered() bool {
	return e.Class == FaultClassUnderflow
}

// IsProtocolFault returns true if err is or wraps a ProtocolFault.
func IsProtocolFault(err error) bool {
	var fault *ProtocolFault
	return errors.As(err, &fault)
}

// ParameterError indicates a categorical parameter outside its allowed set.
// Numeric parameters are clamped instead.
type ParameterError struct {
	Name  string
	Value int
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s %d is out of range", e.Name, e.Value)
}

// StatusError indicates a notification whose length or status byte does not
// match the layout expected for its opcode.
type StatusError struct {
	Opcode byte
	Length byte
	Status byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected notification 0x%02X: length 0x%02X, status %s",
		e.Opcode, e.Length, getStatusName(e.Status))
}

// getStatusName returns a human-readable name for a status byte.
func getStatusName(code byte) string {
	switch {
	case code == StatusSuccess:
		return "success"
	case code >= BootFaultFirst && code <= BootFaultLast:
		return fmt.Sprintf("fault 0x%02X", code)
	default:
		return fmt.Sprintf("unknown status code 0x%02X", code)
	}
}
