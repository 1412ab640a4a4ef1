package protocol

import "fmt"

// Flip selects the image orientation of CmdSetVideoPosition.
type Flip byte

// Flip values accepted by the firmware.
const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1
	FlipVertical   Flip = 2
	FlipBoth       Flip = 3
)

// Valid reports whether f is one of the four orientations the device knows.
func (f Flip) Valid() bool {
	return f <= FlipBoth
}

// Geometry is the keystone/orientation state sent by CmdSetVideoPosition.
// The device has no per-axis command, so all three travel together.
type Geometry struct {
	// Pan is the horizontal keystone correction
	Pan int8

	// Tilt is the vertical keystone correction
	Tilt int8

	// Flip is the image orientation
	Flip Flip
}

// PictureQuality holds the values reported by the all-picture-quality query.
type PictureQuality struct {
	Contrast    int8
	Brightness  int8
	HueU        int8
	HueV        int8
	SaturationU int8
	SaturationV int8
	Sharpness   int8
}

// OpticalAlignment is the raw optical-alignment record reported by the device.
type OpticalAlignment [OpticalAlignmentSize]byte

// Opcodes carries the model-specific opcodes of the picture-quality setters.
type Opcodes struct {
	Brightness byte
	Contrast   byte
	Saturation byte
	Sharpness  byte
}

// DefaultOpcodes returns the opcodes used by CXN0102 firmware.
func DefaultOpcodes() Opcodes {
	return Opcodes{
		Brightness: CmdSetBrightness,
		Contrast:   CmdSetContrast,
		Saturation: CmdSetSaturation,
		Sharpness:  CmdSetSharpness,
	}
}

// FaultClass classifies a device-side fault.
type FaultClass int

const (
	FaultClassUnknown FaultClass = iota
	FaultClassBoot
	FaultClassLaserSafety
	FaultClassFirmware
	FaultClassLaserAnomaly
	FaultClassUnderflow
	FaultClassCommand
)

func (c FaultClass) String() string {
	switch c {
	case FaultClassBoot:
		return "boot fault"
	case FaultClassLaserSafety:
		return "laser safety fault"
	case FaultClassFirmware:
		return "firmware fault"
	case FaultClassLaserAnomaly:
		return "laser anomaly"
	case FaultClassUnderflow:
		return "underflow recovered"
	case FaultClassCommand:
		return "command processing fault"
	default:
		return fmt.Sprintf("unknown fault class %d", int(c))
	}
}

// BootStatus is the outcome reported by a boot notification.
type BootStatus struct {
	// OK is true when the engine booted without fault
	OK bool

	// Code is the raw fault code when OK is false
	Code byte
}
