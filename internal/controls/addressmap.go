package controls

import (
	"fmt"
	"slices"
)

// AddressMap translates single-byte protocol addresses to pads, buttons and
// encoders and back. It is immutable once built.
type AddressMap struct {
	pads     map[uint8]PadCoord
	buttons  map[uint8]ControlName
	encoders map[uint8]EncoderName

	padAddr     map[PadCoord]uint8
	buttonAddr  map[ControlName]uint8
	encoderAddr map[EncoderName]uint8
}

// NewAddressMap builds a map from the three address tables. Pads live in the
// note namespace and may reuse numbers that buttons use; buttons and encoders
// share the control-change namespace and must not overlap. Pad coordinates
// must lie inside the grid, and no control may sit at two addresses.
func NewAddressMap(pads map[uint8]PadCoord, buttons map[uint8]ControlName, encoders map[uint8]EncoderName) (*AddressMap, error) {
	m := &AddressMap{
		pads:        make(map[uint8]PadCoord, len(pads)),
		buttons:     make(map[uint8]ControlName, len(buttons)),
		encoders:    make(map[uint8]EncoderName, len(encoders)),
		padAddr:     make(map[PadCoord]uint8, len(pads)),
		buttonAddr:  make(map[ControlName]uint8, len(buttons)),
		encoderAddr: make(map[EncoderName]uint8, len(encoders)),
	}

	for addr, coord := range pads {
		if !coord.Valid() {
			return nil, fmt.Errorf("pad address %d: coordinate %s outside the %dx%d grid", addr, coord, GridSize, GridSize)
		}
		if prev, dup := m.padAddr[coord]; dup {
			return nil, fmt.Errorf("pad %s mapped to both address %d and %d", coord, prev, addr)
		}
		m.pads[addr] = coord
		m.padAddr[coord] = addr
	}

	for addr, name := range buttons {
		if name >= numControls {
			return nil, fmt.Errorf("button address %d: unknown control %d", addr, uint8(name))
		}
		if prev, dup := m.buttonAddr[name]; dup {
			return nil, fmt.Errorf("button %s mapped to both address %d and %d", name, prev, addr)
		}
		m.buttons[addr] = name
		m.buttonAddr[name] = addr
	}

	for addr, name := range encoders {
		if name >= numEncoders {
			return nil, fmt.Errorf("encoder address %d: unknown encoder %d", addr, uint8(name))
		}
		if _, clash := m.buttons[addr]; clash {
			return nil, fmt.Errorf("address %d is both button %s and encoder %s", addr, m.buttons[addr], name)
		}
		if prev, dup := m.encoderAddr[name]; dup {
			return nil, fmt.Errorf("encoder %s mapped to both address %d and %d", name, prev, addr)
		}
		m.encoders[addr] = name
		m.encoderAddr[name] = addr
	}

	return m, nil
}

// LookupPad returns the pad at a note address.
func (m *AddressMap) LookupPad(addr uint8) (PadCoord, bool) {
	c, ok := m.pads[addr]
	return c, ok
}

// LookupButton returns the button at a control-change address.
func (m *AddressMap) LookupButton(addr uint8) (ControlName, bool) {
	n, ok := m.buttons[addr]
	return n, ok
}

// LookupEncoder returns the encoder at a control-change address.
func (m *AddressMap) LookupEncoder(addr uint8) (EncoderName, bool) {
	n, ok := m.encoders[addr]
	return n, ok
}

// AddressOfPad returns the note address of a pad.
func (m *AddressMap) AddressOfPad(c PadCoord) (uint8, bool) {
	a, ok := m.padAddr[c]
	return a, ok
}

// AddressOfButton returns the control-change address of a button.
func (m *AddressMap) AddressOfButton(n ControlName) (uint8, bool) {
	a, ok := m.buttonAddr[n]
	return a, ok
}

// AddressOfEncoder returns the control-change address of an encoder.
func (m *AddressMap) AddressOfEncoder(n EncoderName) (uint8, bool) {
	a, ok := m.encoderAddr[n]
	return a, ok
}

// PadAddresses returns every mapped pad address in ascending order.
func (m *AddressMap) PadAddresses() []uint8 {
	return sortedKeys(m.pads)
}

// ButtonAddresses returns every mapped button address in ascending order.
func (m *AddressMap) ButtonAddresses() []uint8 {
	return sortedKeys(m.buttons)
}

// EncoderAddresses returns every mapped encoder address in ascending order.
func (m *AddressMap) EncoderAddresses() []uint8 {
	return sortedKeys(m.encoders)
}

func sortedKeys[V any](in map[uint8]V) []uint8 {
	out := make([]uint8, 0, len(in))
	for k := range in {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
