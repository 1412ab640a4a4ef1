package projector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/scatwang/cxn010x/protocol"
)

// CheckNotification reads one notification from the bus and applies it.
// Call it when the engine's notification line is asserted. It returns
// protocol.KindNone with a nil error when nothing was pending.
func (p *Projector) CheckNotification() (protocol.Kind, error) {
	buf := p.buf[:p.config.NotificationSize]

	n, err := p.bus.Receive(p.config.Address, buf)
	if err != nil {
		p.logError("receive failed", "error", err)
		return protocol.KindNone, &TransportError{Op: "receive", Err: err}
	}
	if n == 0 {
		return protocol.KindNone, nil
	}
	if n > len(buf) {
		return protocol.KindNone, fmt.Errorf("receive reported %d bytes into a %d-byte buffer: %w",
			n, len(buf), protocol.ErrFrameTooLarge)
	}

	return p.HandleNotification(buf[:n])
}

// WaitNotification polls CheckNotification every PollInterval until a
// notification is handled or ctx is done.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
//	defer cancel()
//	kind, err := p.WaitNotification(ctx)
func (p *Projector) WaitNotification(ctx context.Context) (protocol.Kind, error) {
	timer := time.NewTimer(p.config.PollInterval)
	defer timer.Stop()

	for {
		kind, err := p.CheckNotification()
		if err != nil || kind != protocol.KindNone {
			return kind, err
		}

		select {
		case <-ctx.Done():
			return protocol.KindNone, ctx.Err()
		case <-timer.C:
			timer.Reset(p.config.PollInterval)
		}
	}
}

// HandleNotification applies one notification frame to the projector.
//
// Frames with an unknown opcode, or a known opcode whose length or status does
// not match, are ignored: nothing changes and the error is nil. Device faults
// come back as *protocol.ProtocolFault; failures of commands the driver
// issues on its own come back as *TransportError.
func (p *Projector) HandleNotification(frame []byte) (protocol.Kind, error) {
	n, err := protocol.ParseNotification(frame)
	if err != nil {
		p.logDebug("notification dropped", "error", err)
		return protocol.KindUnknown, nil
	}

	p.logDebug("notification received",
		"kind", n.Kind.String(),
		"opcode", fmt.Sprintf("0x%02X", n.Opcode),
		"status", fmt.Sprintf("0x%02X", n.Status),
	)

	switch n.Kind {
	case protocol.KindBoot:
		err = p.onBoot(n)
	case protocol.KindStartInput:
		err = p.onStartInput(n)
	case protocol.KindStopInput:
		err = p.onStopInput(n)
	case protocol.KindShutdown:
		err = p.onShutdown(n)
	case protocol.KindEmergencyStop:
		err = p.onEmergencyStop(n)
	case protocol.KindTemperatureAlert:
		err = p.onTemperatureAlert(n)
	case protocol.KindCommandError:
		err = p.reportFault(&protocol.ProtocolFault{
			Opcode: n.Opcode,
			Code:   n.Status,
			Class:  protocol.FaultClassCommand,
		})
	case protocol.KindOpticalAlignment:
		err = p.onOpticalAlignment(n)
	case protocol.KindPictureQuality:
		err = p.onPictureQuality(n)
	case protocol.KindTemperature:
		err = p.onTemperature(n)
	case protocol.KindOperatingTime:
		err = p.onOperatingTime(n)
	case protocol.KindTroubleInfo, protocol.KindTroubleInfoCleared:
		p.logInfo("trouble info acknowledged", "kind", n.Kind.String(), "status", fmt.Sprintf("0x%02X", n.Status))
	default:
		p.logDebug("notification ignored", "opcode", fmt.Sprintf("0x%02X", n.Opcode))
		return protocol.KindUnknown, nil
	}

	var serr *protocol.StatusError
	if errors.As(err, &serr) || errors.Is(err, protocol.ErrShortPayload) {
		p.logDebug("notification dropped", "kind", n.Kind.String(), "error", err)
		return n.Kind, nil
	}
	return n.Kind, err
}

// onBoot handles the boot notification. A clean boot requires the input to
// be enabled again; a faulty boot requires the trouble record to be read
// before it can be cleared.
func (p *Projector) onBoot(n protocol.Notification) error {
	boot, err := protocol.DecodeBoot(n)
	if err != nil {
		return err
	}

	if boot.OK {
		p.setState(StateReady)
		return p.StartInput()
	}

	fault := &protocol.ProtocolFault{Opcode: n.Opcode, Code: boot.Code, Class: protocol.FaultClassBoot}
	if err := p.GetTroubleInfo(); err != nil {
		return errors.Join(p.reportFault(fault), err)
	}
	return p.reportFault(fault)
}

func (p *Projector) onStartInput(n protocol.Notification) error {
	if protocol.IsAck(n) {
		p.setState(StateActive)
	}
	return nil
}

func (p *Projector) onStopInput(n protocol.Notification) error {
	if !protocol.IsAck(n) {
		return nil
	}

	switch p.state {
	case StateBootReadyOff, StateBootReadyReboot:
		return p.powerDown()
	default:
		p.setState(StateReady)
		return nil
	}
}

func (p *Projector) onShutdown(n protocol.Notification) error {
	if !protocol.IsAck(n) {
		return nil
	}
	return p.powerDown()
}

// powerDown switches the supply off after the engine confirmed it stopped.
// A reboot ends here too; the host powers on again.
func (p *Projector) powerDown() error {
	if err := p.power.SetPower(false); err != nil {
		p.logError("power off failed", "error", err)
		return &TransportError{Op: "power off", Err: err}
	}
	p.setState(StatePowerOff)
	return nil
}

func (p *Projector) onEmergencyStop(n protocol.Notification) error {
	class, err := protocol.DecodeEmergencyStop(n)
	if err != nil {
		return err
	}
	return p.reportFault(&protocol.ProtocolFault{Opcode: n.Opcode, Code: n.Status, Class: class})
}

func (p *Projector) onTemperatureAlert(n protocol.Notification) error {
	throttled, err := protocol.DecodeTemperatureAlert(n)
	if err != nil {
		return err
	}

	if throttled {
		p.logError("thermal throttling", "state", p.state.String())
		p.setState(StateMute)
	} else {
		p.logInfo("thermal throttling ended")
		p.setState(StateActive)
	}
	return nil
}

func (p *Projector) onOpticalAlignment(n protocol.Notification) error {
	oa, err := protocol.DecodeOpticalAlignment(n)
	if err != nil {
		return err
	}
	p.telemetry.OpticalAlignment = oa
	p.telemetry.HasOpticalAlignment = true
	return nil
}

func (p *Projector) onPictureQuality(n protocol.Notification) error {
	pq, err := protocol.DecodePictureQuality(n)
	if err != nil {
		return err
	}
	p.telemetry.PictureQuality = pq
	p.telemetry.HasPictureQuality = true
	return nil
}

func (p *Projector) onTemperature(n protocol.Notification) error {
	celsius, err := protocol.DecodeTemperature(n)
	if err != nil {
		return err
	}
	p.telemetry.Temperature = celsius
	p.telemetry.HasTemperature = true

	if cb := p.pendingTemperature; cb != nil {
		p.pendingTemperature = nil
		cb(celsius)
	}
	return nil
}

func (p *Projector) onOperatingTime(n protocol.Notification) error {
	t, err := protocol.DecodeOperatingTime(n)
	if err != nil {
		return err
	}
	p.telemetry.OperatingTime = t
	p.telemetry.HasOperatingTime = true
	return nil
}

// reportFault records fault, hands it to the fault callback and returns it.
func (p *Projector) reportFault(fault *protocol.ProtocolFault) error {
	p.lastFault = fault

	if fault.Recovered() {
		p.logInfo("device fault recovered", "class", fault.Class.String())
	} else {
		p.logError("device fault", "class", fault.Class.String(), "code", fmt.Sprintf("0x%02X", fault.Code))
	}

	if p.config.FaultCallback != nil {
		p.config.FaultCallback(fault)
	}
	return fault
}
