package projector

import (
	"time"

	"github.com/scatwang/cxn010x/protocol"
)

// Config holds the projector configuration.
type Config struct {
	// Address is the 7-bit bus address of the engine
	Address uint16

	// PollInterval is the delay between empty reads in WaitNotification
	PollInterval time.Duration

	// NotificationSize is the number of bytes requested per notification read
	NotificationSize int

	// Opcodes are the model-specific picture-quality opcodes
	Opcodes protocol.Opcodes

	// Logger is used for logging operations (optional)
	Logger Logger

	// StateCallback is called after every state transition (optional)
	StateCallback StateCallback

	// FaultCallback is called for every device fault (optional)
	FaultCallback FaultCallback
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Address:          protocol.DefaultAddress,
		PollInterval:     30 * time.Millisecond,
		NotificationSize: protocol.MaxNotificationSize,
		Opcodes:          protocol.DefaultOpcodes(),
	}
}

// Option is a functional option for configuring the Projector.
type Option func(*Config)

// WithAddress sets the bus address of the engine.
// Addresses outside the 7-bit range are ignored.
//
// Example:
//
//	p := projector.New(bus, power, projector.WithAddress(0x76))
func WithAddress(addr uint16) Option {
	return func(c *Config) {
		if addr > 0 && addr < 0x80 {
			c.Address = addr
		}
	}
}

// WithPollInterval sets the backoff between empty notification reads.
//
// Example:
//
//	p := projector.New(bus, power, projector.WithPollInterval(50*time.Millisecond))
func WithPollInterval(interval time.Duration) Option {
	return func(c *Config) {
		if interval > 0 {
			c.PollInterval = interval
		}
	}
}

// WithNotificationSize sets how many bytes are requested per notification read.
// Default and maximum is protocol.MaxNotificationSize.
func WithNotificationSize(size int) Option {
	return func(c *Config) {
		if size >= protocol.NotificationHeaderSize && size <= protocol.MaxNotificationSize {
			c.NotificationSize = size
		}
	}
}

// WithOpcodes overrides the picture-quality opcodes for firmware variants.
func WithOpcodes(opcodes protocol.Opcodes) Option {
	return func(c *Config) {
		c.Opcodes = opcodes
	}
}

// WithLogger sets a logger for the projector operations.
//
// Example:
//
//	p := projector.New(bus, power, projector.WithLogger(projector.NewLogrusLogger(logrus.New())))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithStateCallback sets a callback invoked after each state transition.
func WithStateCallback(callback StateCallback) Option {
	return func(c *Config) {
		c.StateCallback = callback
	}
}

// WithFaultCallback sets a callback invoked for each device fault.
func WithFaultCallback(callback FaultCallback) Option {
	return func(c *Config) {
		c.FaultCallback = callback
	}
}
