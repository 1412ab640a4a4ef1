package projector

import (
	"fmt"

	"github.com/scatwang/cxn010x/preset"
)

// ApplyPreset sends every setting the preset carries, in a fixed order:
// brightness, contrast, saturation, sharpness, geometry, optical alignment.
// It stops at the first failure; settings already sent stay applied.
//
// Example:
//
//	ps, err := preset.Parse("living-room.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.ApplyPreset(ps); err != nil {
//	    log.Fatal(err)
//	}
func (p *Projector) ApplyPreset(ps *preset.Preset) error {
	if ps == nil {
		return fmt.Errorf("preset cannot be nil")
	}

	p.logInfo("applying preset", "name", ps.Name)

	steps := []struct {
		name  string
		value *int
		apply func(int) error
	}{
		{"brightness", ps.Picture.Brightness, p.SetBrightness},
		{"contrast", ps.Picture.Contrast, p.SetContrast},
		{"saturation", ps.Picture.Saturation, p.SetSaturation},
		{"sharpness", ps.Picture.Sharpness, p.SetSharpness},
	}

	for _, s := range steps {
		if s.value == nil {
			continue
		}
		if err := s.apply(*s.value); err != nil {
			return fmt.Errorf("preset %q: %s: %w", ps.Name, s.name, err)
		}
	}

	if g := ps.Geometry; g != nil {
		if err := p.SetPosition(g.Pan, g.Tilt, g.Flip); err != nil {
			return fmt.Errorf("preset %q: geometry: %w", ps.Name, err)
		}
	}

	if data := ps.Alignment(); data != nil {
		if err := p.SetOpticalAlignment(data); err != nil {
			return fmt.Errorf("preset %q: optical alignment: %w", ps.Name, err)
		}
	}

	return nil
}
