package periph

import (
	"fmt"
	"time"

	"periph.io/x/periph/conn/gpio"
)

// Power implements projector.PowerLine on a GPIO output.
type Power struct {
	pin       gpio.PinOut
	activeLow bool
}

// NewPower drives pin high to switch the engine on. With activeLow set the
// levels are inverted.
func NewPower(pin gpio.PinOut, activeLow bool) (*Power, error) {
	if pin == nil {
		return nil, fmt.Errorf("power pin cannot be nil")
	}
	return &Power{pin: pin, activeLow: activeLow}, nil
}

// SetPower drives the supply pin.
func (p *Power) SetPower(on bool) error {
	level := gpio.Level(on != p.activeLow)
	if err := p.pin.Out(level); err != nil {
		return fmt.Errorf("%s out %s: %w", p.pin, level, err)
	}
	return nil
}

// NotifyLine watches the engine's notification request line, which the
// engine raises while a notification is waiting to be read.
type NotifyLine struct {
	pin gpio.PinIn
}

// NewNotifyLine configures pin as an input with rising-edge detection.
func NewNotifyLine(pin gpio.PinIn) (*NotifyLine, error) {
	if pin == nil {
		return nil, fmt.Errorf("notify pin cannot be nil")
	}
	if err := pin.In(gpio.PullNoChange, gpio.RisingEdge); err != nil {
		return nil, fmt.Errorf("%s in: %w", pin, err)
	}
	return &NotifyLine{pin: pin}, nil
}

// Pending reports whether the line is asserted.
func (n *NotifyLine) Pending() bool {
	return n.pin.Read() == gpio.High
}

// Wait blocks until the line is asserted or timeout elapses. A negative
// timeout waits forever.
func (n *NotifyLine) Wait(timeout time.Duration) bool {
	if n.Pending() {
		return true
	}
	return n.pin.WaitForEdge(timeout)
}

// Close disables edge detection.
func (n *NotifyLine) Close() error {
	return n.pin.In(gpio.PullNoChange, gpio.NoEdge)
}
