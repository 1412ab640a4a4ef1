// Package preset parses YAML files of light-engine settings.
//
// # Preset File Format
//
// A preset names a set of picture-quality values, an optional geometry and an
// optional optical-alignment record:
//
//	name: living-room
//	picture:
//	  brightness: 10
//	  contrast: -3
//	  saturation: 2
//	  sharpness: 4
//	geometry:
//	  pan: 0
//	  tilt: 12
//	  flip: 0
//	optical_alignment: "00 01 02 03 04 05 06 07 08 09 0A 0B 0C"
//
// Omitted picture values and an omitted geometry are left as they are on the
// device. Numeric values are clamped by the driver; flip must be 0..3 and the
// alignment record at most 13 bytes.
//
// # Usage
//
//	ps, err := preset.Parse("living-room.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.ApplyPreset(ps); err != nil {
//	    log.Fatal(err)
//	}
package preset
