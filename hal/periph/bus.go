package periph

import (
	"fmt"

	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/physic"
)

// Bus implements projector.Bus on a periph.io I2C bus. Reads are gated on
// the engine's notification line: an I2C read always fills the buffer, so the
// line is the only way to tell a pending notification from an idle bus.
type Bus struct {
	bus    i2c.Bus
	notify *NotifyLine
}

// BusOption configures a Bus.
type BusOption func(*Bus) error

// WithSpeed sets the bus clock.
//
// Example:
//
//	bus, err := periph.NewBus(i2cBus, notify, periph.WithSpeed(400*physic.KiloHertz))
func WithSpeed(f physic.Frequency) BusOption {
	return func(b *Bus) error {
		if err := b.bus.SetSpeed(f); err != nil {
			return fmt.Errorf("set bus speed %s: %w", f, err)
		}
		return nil
	}
}

// NewBus wraps an opened I2C bus. notify is required.
func NewBus(bus i2c.Bus, notify *NotifyLine, opts ...BusOption) (*Bus, error) {
	if bus == nil {
		return nil, fmt.Errorf("i2c bus cannot be nil")
	}
	if notify == nil {
		return nil, fmt.Errorf("notify line cannot be nil")
	}

	b := &Bus{bus: bus, notify: notify}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Send writes frame to addr in one transaction.
func (b *Bus) Send(addr uint16, frame []byte) error {
	return b.bus.Tx(addr, frame, nil)
}

// Receive reads len(buf) bytes from addr while the notification line is
// asserted, and returns 0 without touching the bus otherwise. n is len(buf)
// on success; the header's length byte tells how much of it is meaningful.
func (b *Bus) Receive(addr uint16, buf []byte) (int, error) {
	if !b.notify.Pending() {
		return 0, nil
	}
	if len(buf) == 0 {
		return 0, nil
	}

	if err := b.bus.Tx(addr, nil, buf); err != nil {
		return 0, err
	}
	return len(buf), nil
}

func (b *Bus) String() string {
	return b.bus.String()
}
