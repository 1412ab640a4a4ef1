// Package projector drives a Sony CXN010x laser light engine.
//
// # Overview
//
// The engine is controlled over a frame-oriented bus (I2C address 0x77) and
// answers asynchronously: every command is acknowledged, and every query is
// answered, by a notification the host reads when the engine raises its
// notification line. The Projector keeps:
//   - The lifecycle state, driven by those notifications
//   - A telemetry cache of the last decoded query answers
//   - One pending temperature callback
//
// Hardware access goes through two small interfaces, Bus and PowerLine.
// The hal/periph package implements them on top of periph.io; the
// projectortest package provides in-memory fakes.
//
// # Basic Usage
//
//	p := projector.New(bus, power)
//
//	if err := p.PowerOn(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// The engine boots and announces itself; the projector then enables
//	// input automatically.
//	for p.State() != projector.StateActive {
//	    if _, err := p.WaitNotification(ctx); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	_ = p.SetBrightness(10)
//
// # Lifecycle
//
//	power-off -> power-on -> ready -> active <-> mute
//	active -> boot-ready-off | boot-ready-reboot -> power-off
//
// PowerOn and Shutdown are the only calls that change state directly, and
// only once the supply or the bus accepted the request. Every other
// transition follows a notification.
//
// # Queries
//
// Queries return as soon as the command is sent. The answer is decoded when
// its notification arrives:
//
//	_ = p.GetTemperature(func(celsius int8) {
//	    fmt.Printf("engine at %d°C\n", celsius)
//	})
//	_, _ = p.WaitNotification(ctx)
//
//	if t, ok := p.Temperature(); ok {
//	    fmt.Println(t)
//	}
//
// # Configuration Options
//
//	p := projector.New(bus, power,
//	    projector.WithAddress(0x77),
//	    projector.WithPollInterval(20*time.Millisecond),
//	    projector.WithLogger(projector.NewLogrusLogger(logrus.StandardLogger())),
//	    projector.WithFaultCallback(func(f *protocol.ProtocolFault) {
//	        log.Printf("fault: %v", f)
//	    }),
//	)
//
// # Error Handling
//
// Transport failures return *TransportError and are never retried. Device
// faults reported by notifications return *protocol.ProtocolFault. A flip
// outside 0..3 returns *protocol.ParameterError; all other numeric
// parameters are clamped. Notifications that do not decode are dropped
// without error.
//
// # Thread Safety
//
// A Projector is not safe for concurrent use. Serialize calls, typically
// by handling notifications and issuing commands from one goroutine.
package projector
