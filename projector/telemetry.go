package projector

import "github.com/scatwang/cxn010x/protocol"

// Telemetry is the most recent value decoded for each query. A Has* flag is
// false until the device has reported that value at least once.
type Telemetry struct {
	PictureQuality    protocol.PictureQuality
	HasPictureQuality bool

	Temperature    int8
	HasTemperature bool

	// OperatingTime is the cumulative operating time as reported by the engine
	OperatingTime    uint32
	HasOperatingTime bool

	OpticalAlignment    protocol.OpticalAlignment
	HasOpticalAlignment bool
}

// Telemetry returns a copy of the cached telemetry.
func (p *Projector) Telemetry() Telemetry {
	return p.telemetry
}

// Temperature returns the last reported temperature and whether one was reported.
func (p *Projector) Temperature() (int8, bool) {
	return p.telemetry.Temperature, p.telemetry.HasTemperature
}

// OperatingTime returns the last reported cumulative operating time.
func (p *Projector) OperatingTime() (uint32, bool) {
	return p.telemetry.OperatingTime, p.telemetry.HasOperatingTime
}

// PictureQuality returns the last reported picture-quality parameters.
func (p *Projector) PictureQuality() (protocol.PictureQuality, bool) {
	return p.telemetry.PictureQuality, p.telemetry.HasPictureQuality
}

// OpticalAlignment returns the last reported optical-alignment record.
func (p *Projector) OpticalAlignment() (protocol.OpticalAlignment, bool) {
	return p.telemetry.OpticalAlignment, p.telemetry.HasOpticalAlignment
}

// HasPendingTemperature reports whether a temperature callback is waiting.
func (p *Projector) HasPendingTemperature() bool {
	return p.pendingTemperature != nil
}
