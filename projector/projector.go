package projector

import (
	"fmt"

	"github.com/scatwang/cxn010x/protocol"
)

// Bus is the frame-level transport to the engine.
type Bus interface {
	// Send writes one complete command frame to addr.
	Send(addr uint16, frame []byte) error

	// Receive reads at most len(buf) bytes of one notification from addr.
	// It returns 0 when no notification is pending.
	Receive(addr uint16, buf []byte) (int, error)
}

// PowerLine drives the engine power supply.
type PowerLine interface {
	SetPower(on bool) error
}

// Projector drives one CXN010x light engine. It owns the lifecycle state,
// the telemetry cache and the pending temperature callback.
//
// State changes only in reaction to notifications, except for the
// host-request states entered by PowerOn and Shutdown.
//
// Projector is not safe for concurrent use; serialize all calls.
type Projector struct {
	bus    Bus
	power  PowerLine
	config Config

	state     State
	geometry  protocol.Geometry
	telemetry Telemetry
	lastFault *protocol.ProtocolFault

	pendingTemperature TemperatureCallback

	buf [protocol.MaxNotificationSize]byte
}

// New creates a new Projector in StatePowerOff with the given bus, power line
// and options.
//
// Example:
//
//	p := projector.New(bus, power,
//	    projector.WithLogger(logger),
//	    projector.WithPollInterval(20*time.Millisecond),
//	)
func New(bus Bus, power PowerLine, opts ...Option) *Projector {
	if bus == nil {
		panic("bus cannot be nil")
	}
	if power == nil {
		panic("power line cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Projector{
		bus:    bus,
		power:  power,
		config: cfg,
		state:  StatePowerOff,
	}
}

// State returns the current lifecycle state.
func (p *Projector) State() State {
	return p.state
}

// Geometry returns the last pan/tilt/flip accepted by the bus.
func (p *Projector) Geometry() protocol.Geometry {
	return p.geometry
}

// LastFault returns the most recent device fault, or nil.
func (p *Projector) LastFault() *protocol.ProtocolFault {
	return p.lastFault
}

// PowerOn switches the engine supply on. The engine announces itself with a
// boot notification, which moves the projector to StateReady.
func (p *Projector) PowerOn() error {
	if p.state != StatePowerOff {
		return &StateError{Op: "power on", State: p.state}
	}

	if err := p.power.SetPower(true); err != nil {
		return &TransportError{Op: "power on", Err: err}
	}

	p.setState(StatePowerOn)
	return nil
}

// Shutdown powers the engine down, or reboots it when reboot is set.
//
// From StateActive the input is stopped first and the projector waits in a
// boot-ready state for the stop acknowledgement; otherwise the shutdown
// command is sent directly. Either way the supply is switched off only once
// the engine confirms.
func (p *Projector) Shutdown(reboot bool) error {
	if p.state == StateActive {
		if err := p.StopInput(); err != nil {
			return err
		}
		if reboot {
			p.setState(StateBootReadyReboot)
		} else {
			p.setState(StateBootReadyOff)
		}
		return nil
	}

	cmd, err := protocol.BuildShutdownCmd(reboot)
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// StartInput enables video input.
func (p *Projector) StartInput() error {
	cmd, err := protocol.BuildStartInputCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// StopInput disables video input.
func (p *Projector) StopInput() error {
	cmd, err := protocol.BuildStopInputCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// SetBrightness sets brightness, clamped to [-31, 31].
func (p *Projector) SetBrightness(value int) error {
	cmd, err := protocol.BuildBrightnessCmd(p.config.Opcodes.Brightness, value)
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// SetContrast sets contrast, clamped to [-15, 15].
func (p *Projector) SetContrast(value int) error {
	cmd, err := protocol.BuildContrastCmd(p.config.Opcodes.Contrast, value)
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// SetSaturation sets saturation, clamped to [-15, 15].
func (p *Projector) SetSaturation(value int) error {
	cmd, err := protocol.BuildSaturationCmd(p.config.Opcodes.Saturation, value)
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// SetSharpness sets sharpness, clamped to [0, 6].
func (p *Projector) SetSharpness(value int) error {
	cmd, err := protocol.BuildSharpnessCmd(p.config.Opcodes.Sharpness, value)
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// SetPan sets horizontal keystone, clamped to [-30, 30].
func (p *Projector) SetPan(pan int) error {
	return p.SetPosition(pan, int(p.geometry.Tilt), int(p.geometry.Flip))
}

// SetTilt sets vertical keystone, clamped to [-20, 30].
func (p *Projector) SetTilt(tilt int) error {
	return p.SetPosition(int(p.geometry.Pan), tilt, int(p.geometry.Flip))
}

// SetFlip sets the image orientation. Values outside 0..3 fail with
// *protocol.ParameterError and nothing is sent.
func (p *Projector) SetFlip(flip int) error {
	return p.SetPosition(int(p.geometry.Pan), int(p.geometry.Tilt), flip)
}

// SetGeometry sets pan, tilt and flip in one command.
func (p *Projector) SetGeometry(g protocol.Geometry) error {
	return p.SetPosition(int(g.Pan), int(g.Tilt), int(g.Flip))
}

// SetPosition sets pan, tilt and flip in one command. Pan and tilt are
// clamped; a flip outside 0..3 fails with *protocol.ParameterError and
// nothing is sent.
func (p *Projector) SetPosition(pan, tilt, flip int) error {
	if flip < 0 || flip > int(protocol.FlipBoth) {
		return &protocol.ParameterError{Name: "flip", Value: flip}
	}
	return p.setGeometry(protocol.Geometry{
		Pan:  int8(protocol.Clamp(pan, protocol.PanMin, protocol.PanMax)),
		Tilt: int8(protocol.Clamp(tilt, protocol.TiltMin, protocol.TiltMax)),
		Flip: protocol.Flip(flip),
	})
}

// setGeometry sends g and commits it once the bus accepted the frame.
func (p *Projector) setGeometry(g protocol.Geometry) error {
	cmd, err := protocol.BuildVideoPositionCmd(g)
	if err != nil {
		return err
	}
	if err := p.send(cmd); err != nil {
		return err
	}
	p.geometry = g
	return nil
}

// GetOpticalAlignment requests the optical-alignment record.
// The answer lands in OpticalAlignment().
func (p *Projector) GetOpticalAlignment() error {
	cmd, err := protocol.BuildGetOpticalAlignmentCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// SetOpticalAlignment writes up to 13 bytes of optical-alignment data.
func (p *Projector) SetOpticalAlignment(data []byte) error {
	cmd, err := protocol.BuildSetOpticalAlignmentCmd(data)
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// GetBiphase requests the biphase adjustment.
func (p *Projector) GetBiphase() error {
	cmd, err := protocol.BuildGetBiphaseCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// GetTemperature requests the engine temperature. A non-nil callback replaces
// any callback still pending and is invoked once when the answer arrives.
//
// Example:
//
//	err := p.GetTemperature(func(celsius int8) { log.Println(celsius) })
func (p *Projector) GetTemperature(callback TemperatureCallback) error {
	cmd, err := protocol.BuildGetTemperatureCmd()
	if err != nil {
		return err
	}
	if err := p.send(cmd); err != nil {
		return err
	}

	if callback != nil {
		if p.pendingTemperature != nil {
			p.logDebug("replacing pending temperature callback")
		}
		p.pendingTemperature = callback
	}
	return nil
}

// GetOperatingTime requests the cumulative operating time.
func (p *Projector) GetOperatingTime() error {
	cmd, err := protocol.BuildGetOperatingTimeCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// GetAllPictureQuality requests every picture-quality parameter.
func (p *Projector) GetAllPictureQuality() error {
	cmd, err := protocol.BuildGetAllPictureQualityCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// GetTroubleInfo requests the device trouble record.
func (p *Projector) GetTroubleInfo() error {
	cmd, err := protocol.BuildGetTroubleInfoCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// ClearTroubleInfo clears the device trouble record.
func (p *Projector) ClearTroubleInfo() error {
	cmd, err := protocol.BuildClearTroubleInfoCmd()
	if err != nil {
		return err
	}
	return p.send(cmd)
}

// send writes one command frame. Success means the bus accepted the frame,
// not that the engine acted on it.
func (p *Projector) send(cmd []byte) error {
	if err := p.bus.Send(p.config.Address, cmd); err != nil {
		p.logError("send failed", "opcode", fmt.Sprintf("0x%02X", cmd[0]), "error", err)
		return &TransportError{Op: "send", Opcode: cmd[0], Err: err}
	}

	p.logDebug("command sent", "opcode", fmt.Sprintf("0x%02X", cmd[0]), "len", len(cmd))
	return nil
}

// setState moves to s and reports the transition.
func (p *Projector) setState(s State) {
	if s == p.state {
		return
	}

	from := p.state
	p.state = s

	p.logInfo("state changed", "from", from.String(), "to", s.String())
	if p.config.StateCallback != nil {
		p.config.StateCallback(from, s)
	}
}

// logDebug logs a debug message if a logger is configured.
func (p *Projector) logDebug(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (p *Projector) logInfo(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (p *Projector) logError(msg string, keysAndValues ...interface{}) {
	if p.config.Logger != nil {
		p.config.Logger.Error(msg, keysAndValues...)
	}
}
