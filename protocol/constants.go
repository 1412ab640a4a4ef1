package protocol

// DefaultAddress is the 7-bit bus address of the CXN010x light engine.
const DefaultAddress = 0x77

// Frame size limits.
const (
	// MaxFrameSize is the largest command frame the device accepts.
	MaxFrameSize = 32

	// MaxNotificationSize is the largest notification frame the device emits.
	MaxNotificationSize = 32

	// NotificationHeaderSize is the size of [OPCODE][LENGTH][STATUS].
	NotificationHeaderSize = 3
)

// Command opcodes.
const (
	// CmdStartInput enables video input
	CmdStartInput = 0x01

	// CmdStopInput disables video input
	CmdStopInput = 0x02

	// CmdShutdown shuts the engine down or reboots it
	CmdShutdown = 0x0B

	// CmdSetVideoPosition sets pan, tilt and flip together
	CmdSetVideoPosition = 0x26

	// CmdGetOpticalAlignment queries the optical-alignment record
	CmdGetOpticalAlignment = 0x27

	// CmdSetOpticalAlignment writes the optical-alignment record
	CmdSetOpticalAlignment = 0x28

	// CmdGetBiphase queries the biphase adjustment
	CmdGetBiphase = 0x29

	// CmdGetAllPictureQuality queries every picture-quality parameter at once
	CmdGetAllPictureQuality = 0x40

	// CmdSetContrast is the default contrast opcode
	CmdSetContrast = 0x4C

	// CmdSetBrightness is the default brightness opcode
	CmdSetBrightness = 0x4D

	// CmdSetSaturation is the default saturation opcode
	CmdSetSaturation = 0x4E

	// CmdSetSharpness is the default sharpness opcode
	CmdSetSharpness = 0x4F

	// CmdGetTemperature queries the engine temperature
	CmdGetTemperature = 0xA0

	// CmdGetOperatingTime queries the cumulative operating time
	CmdGetOperatingTime = 0xA1

	// CmdGetTroubleInfo reads the device trouble record
	CmdGetTroubleInfo = 0xCA

	// CmdClearTroubleInfo clears the device trouble record
	CmdClearTroubleInfo = 0xCB
)

// Notification opcodes that have no command counterpart.
const (
	NotifyBoot             = 0x00
	NotifyEmergencyStop    = 0x10
	NotifyTemperatureAlert = 0x11
	NotifyCommandError     = 0x12
)

// Status bytes.
const (
	// StatusSuccess is the secondary status of a successful notification
	StatusSuccess = 0x00

	// AckLength is the length byte carried by plain acknowledgements
	AckLength = 0x01
)

// Boot fault codes span BootFaultFirst..BootFaultLast in the status byte.
const (
	BootFaultFirst = 0x80
	BootFaultLast  = 0x84
)

// Emergency-stop fault codes, carried in the status byte.
const (
	EmergencyLaserSafety  = 0x80
	EmergencyFirmware     = 0x81
	EmergencyLaserAnomaly = 0x82
	EmergencyUnderflow    = 0x83
)

// Temperature alert status bytes.
const (
	StatusThermalAlert  = 0x80
	StatusThermalNormal = 0x00
)

// Declared lengths and payload sizes of query responses.
const (
	OpticalAlignmentLength = 0x0E
	OpticalAlignmentSize   = 14

	// OpticalAlignmentSetSize is the payload size of CmdSetOpticalAlignment.
	OpticalAlignmentSetSize = 13

	PictureQualityLength = 0x0A
	PictureQualitySize   = 8

	TemperatureSize   = 1
	OperatingTimeSize = 4
)

// Parameter ranges enforced by the firmware.
const (
	BrightnessMin = -31
	BrightnessMax = 31

	ContrastMin = -15
	ContrastMax = 15

	SaturationMin = -15
	SaturationMax = 15

	SharpnessMin = 0
	SharpnessMax = 6

	PanMin = -30
	PanMax = 30

	TiltMin = -20
	TiltMax = 30
)

// videoPositionZoom is the fixed zoom byte of CmdSetVideoPosition (100%).
const videoPositionZoom = 0x64
