package preset

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scatwang/cxn010x/protocol"
)

// Parse parses a preset file from the given path.
//
// Example:
//
//	ps, err := preset.Parse("living-room.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = p.ApplyPreset(ps)
func Parse(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader parses a preset from any io.Reader.
// Unknown keys are rejected.
//
// Example:
//
//	ps, err := preset.ParseReader(strings.NewReader("name: dim\npicture:\n  brightness: -10\n"))
func ParseReader(r io.Reader) (*Preset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Preset
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty preset")
		}
		return nil, fmt.Errorf("failed to decode preset: %w", err)
	}

	if err := validate(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

// validate checks the categorical and size constraints the driver cannot
// clamp, and decodes the alignment record.
func validate(p *Preset) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name is required")
	}

	if g := p.Geometry; g != nil {
		if g.Flip < 0 || g.Flip > int(protocol.FlipBoth) {
			return fmt.Errorf("preset %q: geometry: %w", p.Name,
				&protocol.ParameterError{Name: "flip", Value: g.Flip})
		}
	}

	if p.OpticalAlignment != "" {
		data, err := hex.DecodeString(strings.ReplaceAll(p.OpticalAlignment, " ", ""))
		if err != nil {
			return fmt.Errorf("preset %q: optical_alignment: invalid hex data: %w", p.Name, err)
		}
		if len(data) > protocol.OpticalAlignmentSetSize {
			return fmt.Errorf("preset %q: optical_alignment: got %d bytes, maximum is %d",
				p.Name, len(data), protocol.OpticalAlignmentSetSize)
		}
		p.alignment = data
	}

	return nil
}
