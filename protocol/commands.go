package protocol

import "fmt"

// Clamp restricts v to [lo, hi], saturating at the bounds.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// buildFrame assembles [OPCODE][LENGTH][PAYLOAD...] into a bounded frame.
func buildFrame(opcode, length byte, payload ...byte) ([]byte, error) {
	size := 2 + len(payload)
	if size > MaxFrameSize {
		return nil, fmt.Errorf("command 0x%02X: %d bytes exceeds maximum %d: %w",
			opcode, size, MaxFrameSize, ErrFrameTooLarge)
	}

	frame := make([]byte, 0, size)
	frame = append(frame, opcode, length)
	frame = append(frame, payload...)

	return frame, nil
}

// BuildStartInputCmd constructs a Start Input command frame.
//
// Frame structure:
//
//	[0x01][0x00]
func BuildStartInputCmd() ([]byte, error) {
	return buildFrame(CmdStartInput, 0x00)
}

// BuildStopInputCmd constructs a Stop Input command frame.
//
// Frame structure:
//
//	[0x02][0x00]
func BuildStopInputCmd() ([]byte, error) {
	return buildFrame(CmdStopInput, 0x00)
}

// BuildShutdownCmd constructs a Shutdown command frame.
// With reboot set the engine restarts instead of staying off.
//
// Frame structure:
//
//	[0x0B][0x01][REBOOT]
func BuildShutdownCmd(reboot bool) ([]byte, error) {
	var mode byte
	if reboot {
		mode = 0x01
	}
	return buildFrame(CmdShutdown, 0x01, mode)
}

// BuildBrightnessCmd constructs a brightness command frame.
// The value is clamped to [BrightnessMin, BrightnessMax].
//
// Frame structure:
//
//	[OPCODE][0x01][VALUE]
func BuildBrightnessCmd(opcode byte, value int) ([]byte, error) {
	v := Clamp(value, BrightnessMin, BrightnessMax)
	return buildFrame(opcode, 0x01, byte(int8(v)))
}

// BuildContrastCmd constructs a contrast command frame.
// The value is clamped to [ContrastMin, ContrastMax].
//
// Frame structure:
//
//	[OPCODE][0x01][VALUE]
func BuildContrastCmd(opcode byte, value int) ([]byte, error) {
	v := Clamp(value, ContrastMin, ContrastMax)
	return buildFrame(opcode, 0x01, byte(int8(v)))
}

// BuildSaturationCmd constructs a saturation command frame.
// The value is clamped to [SaturationMin, SaturationMax].
//
// Frame structure:
//
//	[OPCODE][0x02][0x02][VALUE]
func BuildSaturationCmd(opcode byte, value int) ([]byte, error) {
	v := Clamp(value, SaturationMin, SaturationMax)
	return buildFrame(opcode, 0x02, 0x02, byte(int8(v)))
}

// BuildSharpnessCmd constructs a sharpness command frame.
// The value is clamped to [SharpnessMin, SharpnessMax] and sits in the
// fourth byte, after a zero pad.
//
// Frame structure:
//
//	[OPCODE][0x01][0x00][VALUE]
func BuildSharpnessCmd(opcode byte, value int) ([]byte, error) {
	v := Clamp(value, SharpnessMin, SharpnessMax)
	return buildFrame(opcode, 0x01, 0x00, byte(v))
}

// BuildVideoPositionCmd constructs a Set Video Position command frame.
// Pan and tilt are clamped; a flip outside FlipNone..FlipBoth is rejected.
//
// Frame structure:
//
//	[0x26][0x09][PAN][TILT][FLIP][0x64][0x00 x5]
func BuildVideoPositionCmd(g Geometry) ([]byte, error) {
	if !g.Flip.Valid() {
		return nil, &ParameterError{Name: "flip", Value: int(g.Flip)}
	}

	pan := Clamp(int(g.Pan), PanMin, PanMax)
	tilt := Clamp(int(g.Tilt), TiltMin, TiltMax)

	return buildFrame(CmdSetVideoPosition, 0x09,
		byte(int8(pan)), byte(int8(tilt)), byte(g.Flip), videoPositionZoom,
		0x00, 0x00, 0x00, 0x00, 0x00,
	)
}

// BuildGetOpticalAlignmentCmd constructs a Get Optical Alignment command frame.
//
// Frame structure:
//
//	[0x27][0x00]
func BuildGetOpticalAlignmentCmd() ([]byte, error) {
	return buildFrame(CmdGetOpticalAlignment, 0x00)
}

// BuildSetOpticalAlignmentCmd constructs a Set Optical Alignment command frame.
// data is zero-padded to OpticalAlignmentSetSize bytes; longer data is rejected.
//
// Frame structure:
//
//	[0x28][0x0D][DATA(13)]
func BuildSetOpticalAlignmentCmd(data []byte) ([]byte, error) {
	if len(data) > OpticalAlignmentSetSize {
		return nil, fmt.Errorf("optical alignment data length %d exceeds maximum %d bytes: %w",
			len(data), OpticalAlignmentSetSize, ErrFrameTooLarge)
	}

	payload := make([]byte, OpticalAlignmentSetSize)
	copy(payload, data)

	return buildFrame(CmdSetOpticalAlignment, OpticalAlignmentSetSize, payload...)
}

// BuildGetBiphaseCmd constructs a Get Biphase command frame.
//
// Frame structure:
//
//	[0x29][0x00]
func BuildGetBiphaseCmd() ([]byte, error) {
	return buildFrame(CmdGetBiphase, 0x00)
}

// BuildGetTemperatureCmd constructs a Get Temperature command frame.
//
// Frame structure:
//
//	[0xA0][0x00]
func BuildGetTemperatureCmd() ([]byte, error) {
	return buildFrame(CmdGetTemperature, 0x00)
}

// BuildGetOperatingTimeCmd constructs a Get Cumulative Operating Time command frame.
//
// Frame structure:
//
//	[0xA1][0x00]
func BuildGetOperatingTimeCmd() ([]byte, error) {
	return buildFrame(CmdGetOperatingTime, 0x00)
}

// BuildGetAllPictureQualityCmd constructs a Get All Picture Quality command frame.
//
// Frame structure:
//
//	[0x40][0x00]
func BuildGetAllPictureQualityCmd() ([]byte, error) {
	return buildFrame(CmdGetAllPictureQuality, 0x00)
}

// BuildGetTroubleInfoCmd constructs a Get Trouble Info command frame.
//
// Frame structure:
//
//	[0xCA][0x05][0x01][0x24][0x10][0x06][0x00]
func BuildGetTroubleInfoCmd() ([]byte, error) {
	return buildFrame(CmdGetTroubleInfo, 0x05, 0x01, 0x24, 0x10, 0x06, 0x00)
}

// BuildClearTroubleInfoCmd constructs a Clear Trouble Info command frame.
//
// Frame structure:
//
//	[0xCB][0x05][0x01][0x24][0x10][0x10][0x06][0x00][0x00]
func BuildClearTroubleInfoCmd() ([]byte, error) {
	return buildFrame(CmdClearTroubleInfo, 0x05, 0x01, 0x24, 0x10, 0x10, 0x06, 0x00, 0x00)
}
