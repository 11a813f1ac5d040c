package controls

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// mappingFile is the on-disk shape of an address map:
//
//	pads:
//	  36: {x: 0, y: 7}
//	buttons:
//	  3: tap_tempo
//	encoders:
//	  14: tempo
type mappingFile struct {
	Pads     map[uint8]PadCoord `yaml:"pads"`
	Buttons  map[uint8]string   `yaml:"buttons"`
	Encoders map[uint8]string   `yaml:"encoders"`
}

// LoadFile reads a YAML address map from path.
func LoadFile(path string) (*AddressMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML address map.
func Parse(data []byte) (*AddressMap, error) {
	var f mappingFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	buttons := make(map[uint8]ControlName, len(f.Buttons))
	for addr, s := range f.Buttons {
		name, ok := ParseControlName(s)
		if !ok {
			return nil, fmt.Errorf("button address %d: unknown control %q", addr, s)
		}
		buttons[addr] = name
	}

	encoders := make(map[uint8]EncoderName, len(f.Encoders))
	for addr, s := range f.Encoders {
		name, ok := ParseEncoderName(s)
		if !ok {
			return nil, fmt.Errorf("encoder address %d: unknown encoder %q", addr, s)
		}
		encoders[addr] = name
	}

	return NewAddressMap(f.Pads, buttons, encoders)
}

// Marshal encodes m in the format read by Parse.
func (m *AddressMap) Marshal() ([]byte, error) {
	f := mappingFile{
		Pads:     make(map[uint8]PadCoord, len(m.pads)),
		Buttons:  make(map[uint8]string, len(m.buttons)),
		Encoders: make(map[uint8]string, len(m.encoders)),
	}
	for addr, c := range m.pads {
		f.Pads[addr] = c
	}
	for addr, n := range m.buttons {
		f.Buttons[addr] = n.String()
	}
	for addr, n := range m.encoders {
		f.Encoders[addr] = n.String()
	}
	return yaml.Marshal(&f)
}

// Equal reports whether two maps hold the same assignments.
func (m *AddressMap) Equal(o *AddressMap) bool {
	if !slices.Equal(m.PadAddresses(), o.PadAddresses()) ||
		!slices.Equal(m.ButtonAddresses(), o.ButtonAddresses()) ||
		!slices.Equal(m.EncoderAddresses(), o.EncoderAddresses()) {
		return false
	}
	for addr, c := range m.pads {
		if o.pads[addr] != c {
			return false
		}
	}
	for addr, n := range m.buttons {
		if o.buttons[addr] != n {
			return false
		}
	}
	for addr, n := range m.encoders {
		if o.encoders[addr] != n {
			return false
		}
	}
	return true
}
