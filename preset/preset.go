package preset

// Preset is a named set of picture, geometry and alignment settings.
// Nil fields are left untouched when the preset is applied.
type Preset struct {
	// Name identifies the preset
	Name string `yaml:"name"`

	// Picture holds the picture-quality settings
	Picture Picture `yaml:"picture"`

	// Geometry holds keystone and orientation, or nil to keep the current one
	Geometry *Geometry `yaml:"geometry"`

	// OpticalAlignment is the hex-encoded alignment record (up to 13 bytes)
	OpticalAlignment string `yaml:"optical_alignment"`

	// alignment is the decoded OpticalAlignment
	alignment []byte
}

// Picture holds picture-quality settings. Values are clamped by the device
// driver, not here.
type Picture struct {
	Brightness *int `yaml:"brightness"`
	Contrast   *int `yaml:"contrast"`
	Saturation *int `yaml:"saturation"`
	Sharpness  *int `yaml:"sharpness"`
}

// Geometry holds pan, tilt and flip. They are always sent together.
type Geometry struct {
	Pan  int `yaml:"pan"`
	Tilt int `yaml:"tilt"`
	Flip int `yaml:"flip"`
}

// Alignment returns the decoded optical-alignment record, or nil when the
// preset does not set one.
func (p *Preset) Alignment() []byte {
	return p.alignment
}
