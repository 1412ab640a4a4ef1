// Package protocol implements the command and notification framing of the
// Sony CXN010x laser light engine.
//
// This package builds command frames and parses notification frames. It holds
// no device state; see package projector for the lifecycle state machine.
//
// # Protocol Overview
//
// The engine sits on an I2C bus at DefaultAddress. The host writes command
// frames and, when the engine raises its notification line, reads
// notification frames back:
//
//	Command:      [OPCODE][LENGTH][PAYLOAD...]
//	Notification: [OPCODE][LENGTH][STATUS][PAYLOAD...]
//
// A command is acknowledged asynchronously by a notification carrying the
// same opcode. Some notifications (boot, emergency stop, temperature alert,
// command error) are spontaneous.
//
// # Command Builders
//
// Use the Build* functions to create command frames:
//
//	frame, err := protocol.BuildBrightnessCmd(protocol.CmdSetBrightness, 12)
//	frame, err := protocol.BuildVideoPositionCmd(protocol.Geometry{Pan: -4, Tilt: 10})
//	// ... etc
//
// Numeric parameters are clamped to the firmware range. Flip is categorical
// and values outside FlipNone..FlipBoth fail with a *ParameterError.
//
// # Notification Parsers
//
// Use ParseNotification to split a frame, then the Decode* function for its kind:
//
//	n, err := protocol.ParseNotification(frame)
//	switch n.Kind {
//	case protocol.KindTemperature:
//	    celsius, err := protocol.DecodeTemperature(n)
//	}
//
// # Error Handling
//
// Device-side faults are reported as *ProtocolFault:
//
//	if protocol.IsProtocolFault(err) {
//	    // err.Error() returns: "device fault: laser safety fault (opcode 0x10, code 0x80)"
//	}
package protocol
