package protocol

import (
	"encoding/binary"
	"fmt"
)

// Kind classifies a notification by its leading opcode.
type Kind int

// Notification kinds. KindUnknown covers every opcode this driver does not
// interpret; KindNone means no notification was pending.
const (
	KindNone Kind = iota
	KindUnknown
	KindBoot
	KindStartInput
	KindStopInput
	KindShutdown
	KindEmergencyStop
	KindTemperatureAlert
	KindCommandError
	KindOpticalAlignment
	KindPictureQuality
	KindTemperature
	KindOperatingTime
	KindTroubleInfo
	KindTroubleInfoCleared
)

var kindNames = map[Kind]string{
	KindNone:               "none",
	KindUnknown:            "unknown",
	KindBoot:               "boot",
	KindStartInput:         "start input",
	KindStopInput:          "stop input",
	KindShutdown:           "shutdown",
	KindEmergencyStop:      "emergency stop",
	KindTemperatureAlert:   "temperature alert",
	KindCommandError:       "command error",
	KindOpticalAlignment:   "optical alignment",
	KindPictureQuality:     "picture quality",
	KindTemperature:        "temperature",
	KindOperatingTime:      "operating time",
	KindTroubleInfo:        "trouble info",
	KindTroubleInfoCleared: "trouble info cleared",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// KindOf maps a notification opcode to its Kind.
func KindOf(opcode byte) Kind {
	switch opcode {
	case NotifyBoot:
		return KindBoot
	case CmdStartInput:
		return KindStartInput
	case CmdStopInput:
		return KindStopInput
	case CmdShutdown:
		return KindShutdown
	case NotifyEmergencyStop:
		return KindEmergencyStop
	case NotifyTemperatureAlert:
		return KindTemperatureAlert
	case NotifyCommandError:
		return KindCommandError
	case CmdGetOpticalAlignment:
		return KindOpticalAlignment
	case CmdGetAllPictureQuality:
		return KindPictureQuality
	case CmdGetTemperature:
		return KindTemperature
	case CmdGetOperatingTime:
		return KindOperatingTime
	case CmdGetTroubleInfo:
		return KindTroubleInfo
	case CmdClearTroubleInfo:
		return KindTroubleInfoCleared
	default:
		return KindUnknown
	}
}

// Notification is a parsed notification frame.
type Notification struct {
	Kind    Kind
	Opcode  byte
	Length  byte
	Status  byte
	Payload []byte
}

// ParseNotification splits a notification frame into header and payload.
//
// Frame structure:
//
//	[OPCODE][LENGTH][STATUS][PAYLOAD...]
//
// The payload size is implied by the opcode; the per-kind Decode functions
// check it field by field.
func ParseNotification(frame []byte) (Notification, error) {
	if len(frame) < NotificationHeaderSize {
		return Notification{}, fmt.Errorf("got %d bytes, minimum is %d: %w",
			len(frame), NotificationHeaderSize, ErrShortFrame)
	}
	if len(frame) > MaxNotificationSize {
		return Notification{}, fmt.Errorf("got %d bytes, maximum is %d: %w",
			len(frame), MaxNotificationSize, ErrFrameTooLarge)
	}

	n := Notification{
		Kind:   KindOf(frame[0]),
		Opcode: frame[0],
		Length: frame[1],
		Status: frame[2],
	}
	if len(frame) > NotificationHeaderSize {
		n.Payload = frame[NotificationHeaderSize:]
	}

	return n, nil
}

// IsAck reports whether n is a successful plain acknowledgement.
func IsAck(n Notification) bool {
	return n.Length == AckLength && n.Status == StatusSuccess
}

// DecodeBoot decodes a boot notification.
// Status 0x00 is a clean boot; BootFaultFirst..BootFaultLast are faults.
func DecodeBoot(n Notification) (BootStatus, error) {
	switch {
	case n.Status == StatusSuccess:
		return BootStatus{OK: true}, nil
	case n.Status >= BootFaultFirst && n.Status <= BootFaultLast:
		return BootStatus{Code: n.Status}, nil
	default:
		return BootStatus{}, n.statusError()
	}
}

// DecodeEmergencyStop decodes the fault class of an emergency-stop notification.
func DecodeEmergencyStop(n Notification) (FaultClass, error) {
	switch n.Status {
	case EmergencyLaserSafety:
		return FaultClassLaserSafety, nil
	case EmergencyFirmware:
		return FaultClassFirmware, nil
	case EmergencyLaserAnomaly:
		return FaultClassLaserAnomaly, nil
	case EmergencyUnderflow:
		return FaultClassUnderflow, nil
	default:
		return FaultClassUnknown, n.statusError()
	}
}

// DecodeTemperatureAlert decodes a temperature alert.
// Returns true when the engine started thermal throttling and false when it
// recovered.
func DecodeTemperatureAlert(n Notification) (bool, error) {
	if n.Length != AckLength {
		return false, n.statusError()
	}
	switch n.Status {
	case StatusThermalAlert:
		return true, nil
	case StatusThermalNormal:
		return false, nil
	default:
		return false, n.statusError()
	}
}

// DecodeOpticalAlignment decodes an optical-alignment query response.
//
// Data format (OpticalAlignmentSize bytes):
//
//	[RECORD(14)]
func DecodeOpticalAlignment(n Notification) (OpticalAlignment, error) {
	var oa OpticalAlignment
	if n.Length != OpticalAlignmentLength || n.Status != StatusSuccess {
		return oa, n.statusError()
	}
	if err := n.requirePayload(OpticalAlignmentSize); err != nil {
		return oa, err
	}

	copy(oa[:], n.Payload[:OpticalAlignmentSize])
	return oa, nil
}

// DecodePictureQuality decodes an all-picture-quality query response.
//
// Data format (PictureQualitySize bytes, all signed):
//
//	[CONTRAST][BRIGHTNESS][HUE_U][HUE_V][SAT_U][SAT_V][RESERVED][SHARPNESS]
func DecodePictureQuality(n Notification) (PictureQuality, error) {
	if n.Length != PictureQualityLength || n.Status != StatusSuccess {
		return PictureQuality{}, n.statusError()
	}
	if err := n.requirePayload(PictureQualitySize); err != nil {
		return PictureQuality{}, err
	}

	p := n.Payload
	return PictureQuality{
		Contrast:    int8(p[0]),
		Brightness:  int8(p[1]),
		HueU:        int8(p[2]),
		HueV:        int8(p[3]),
		SaturationU: int8(p[4]),
		SaturationV: int8(p[5]),
		Sharpness:   int8(p[7]),
	}, nil
}

// DecodeTemperature decodes a temperature query response.
//
// Data format (1 byte):
//
//	[CELSIUS (signed)]
func DecodeTemperature(n Notification) (int8, error) {
	if n.Status != StatusSuccess {
		return 0, n.statusError()
	}
	if err := n.requirePayload(TemperatureSize); err != nil {
		return 0, err
	}

	return int8(n.Payload[0]), nil
}

// DecodeOperatingTime decodes a cumulative operating time response.
//
// Data format (4 bytes):
//
//	[TIME (little-endian uint32)]
func DecodeOperatingTime(n Notification) (uint32, error) {
	if n.Status != StatusSuccess {
		return 0, n.statusError()
	}
	if err := n.requirePayload(OperatingTimeSize); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(n.Payload[:OperatingTimeSize]), nil
}

func (n Notification) statusError() error {
	return &StatusError{Opcode: n.Opcode, Length: n.Length, Status: n.Status}
}

func (n Notification) requirePayload(size int) error {
	if len(n.Payload) < size {
		return fmt.Errorf("notification 0x%02X: got %d payload bytes, expected %d: %w",
			n.Opcode, len(n.Payload), size, ErrShortPayload)
	}
	return nil
}
