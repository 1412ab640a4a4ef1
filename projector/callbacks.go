package projector

import "github.com/scatwang/cxn010x/protocol"

// TemperatureCallback receives the temperature reported in answer to
// GetTemperature. It is invoked at most once per registration.
//
// Example:
//
//	err := p.GetTemperature(func(celsius int8) {
//	    fmt.Printf("engine at %d°C\n", celsius)
//	})
type TemperatureCallback func(celsius int8)

// StateCallback is called after every lifecycle transition.
// Implementations should return quickly; they run inside notification handling.
type StateCallback func(from, to State)

// FaultCallback is called for every device-side fault a notification reports.
//
// Example:
//
//	p := projector.New(bus, power,
//	    projector.WithFaultCallback(func(f *protocol.ProtocolFault) {
//	        if !f.Recovered() {
//	            alarm(f)
//	        }
//	    }),
//	)
type FaultCallback func(fault *protocol.ProtocolFault)

// Logger is an optional logging interface that can be provided to the projector.
// This allows integration with any logging framework; NewLogrusLogger adapts logrus.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	p := projector.New(bus, power, projector.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
