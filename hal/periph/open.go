package periph

import (
	"errors"
	"fmt"

	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/i2c"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/host"
)

// Settings names the host resources the engine is wired to.
type Settings struct {
	// BusName is the I2C bus, e.g. "/dev/i2c-1" or "1"; empty picks the first
	BusName string

	// PowerPin is the GPIO that switches the engine supply, e.g. "GPIO17"
	PowerPin string

	// PowerActiveLow inverts the supply pin
	PowerActiveLow bool

	// NotifyPin is the GPIO the engine raises when a notification is pending
	NotifyPin string

	// Speed is the bus clock; zero keeps the driver default
	Speed physic.Frequency
}

// Validate checks that every required resource is named.
func (s Settings) Validate() error {
	if s.PowerPin == "" {
		return fmt.Errorf("power pin is required")
	}
	if s.NotifyPin == "" {
		return fmt.Errorf("notify pin is required")
	}
	if s.Speed < 0 {
		return fmt.Errorf("bus speed %s is negative", s.Speed)
	}
	return nil
}

// Device bundles the opened host resources.
type Device struct {
	Bus    *Bus
	Power  *Power
	Notify *NotifyLine

	closer i2c.BusCloser
}

// Open initializes the periph.io host drivers and opens everything named in s.
//
// Example:
//
//	dev, err := periph.Open(periph.Settings{BusName: "1", PowerPin: "GPIO17", NotifyPin: "GPIO27"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//	p := projector.New(dev.Bus, dev.Power)
func Open(s Settings) (*Device, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}

	bc, err := i2creg.Open(s.BusName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", s.BusName, err)
	}

	dev := &Device{closer: bc}

	pp := gpioreg.ByName(s.PowerPin)
	if pp == nil {
		_ = bc.Close()
		return nil, fmt.Errorf("power pin %q not found", s.PowerPin)
	}
	if dev.Power, err = NewPower(pp, s.PowerActiveLow); err != nil {
		_ = bc.Close()
		return nil, err
	}

	np := gpioreg.ByName(s.NotifyPin)
	if np == nil {
		_ = bc.Close()
		return nil, fmt.Errorf("notify pin %q not found", s.NotifyPin)
	}
	if dev.Notify, err = NewNotifyLine(np); err != nil {
		_ = bc.Close()
		return nil, err
	}

	var opts []BusOption
	if s.Speed > 0 {
		opts = append(opts, WithSpeed(s.Speed))
	}

	if dev.Bus, err = NewBus(bc, dev.Notify, opts...); err != nil {
		_ = dev.Close()
		return nil, err
	}
	return dev, nil
}

// Close releases the notify pin and the bus.
func (d *Device) Close() error {
	var errs []error
	if d.Notify != nil {
		errs = append(errs, d.Notify.Close())
	}
	if d.closer != nil {
		errs = append(errs, d.closer.Close())
	}
	return errors.Join(errs...)
}
