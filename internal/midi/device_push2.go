package midi

import (
	"fmt"

	"github.com/PixPMusic/gopher-push/internal/controls"
	"gitlab.com/gomidi/midi/v2"
)

// Push2Device implements Device for the Push 2 live port.
type Push2Device struct {
	addrs *controls.AddressMap
}

// NewPush2Device returns a device using addrs, or the built-in map when addrs is nil.
func NewPush2Device(addrs *controls.AddressMap) *Push2Device {
	if addrs == nil {
		addrs = controls.Default()
	}
	return &Push2Device{addrs: addrs}
}

// Addresses returns the address map used for decoding and lighting.
func (d *Push2Device) Addresses() *controls.AddressMap {
	return d.addrs
}

func (d *Push2Device) HandleMessage(msg []byte) (controls.Event, bool) {
	if len(msg) < 3 {
		return nil, false
	}
	status, addr, value := msg[0], msg[1], msg[2]
	// Data bytes are seven bits wide.
	if addr > 0x7F || value > 0x7F {
		return nil, false
	}

	switch status {
	case StatusNoteOn, StatusNoteOff:
		coord, ok := d.addrs.LookupPad(addr)
		if !ok {
			return nil, false
		}
		if status == StatusNoteOn && value > 0 {
			return controls.PadPressed{Coord: coord, Velocity: value}, true
		}
		return controls.PadReleased{Coord: coord}, true

	case StatusControlChange:
		// Buttons win over encoders; the address map keeps them apart anyway.
		if name, ok := d.addrs.LookupButton(addr); ok {
			if value > 0 {
				return controls.ButtonPressed{Name: name, Velocity: value}, true
			}
			return controls.ButtonReleased{Name: name}, true
		}
		if name, ok := d.addrs.LookupEncoder(addr); ok {
			return controls.EncoderTwisted{Name: name, RawDelta: value}, true
		}

	case StatusPitchBend:
		// addr carries the low seven bits, value the high seven.
		return controls.SliderMoved{Value: uint16(value)<<7 | uint16(addr)}, true
	}

	return nil, false
}

func (d *Push2Device) SetPadColor(send func(midi.Message) error, coord controls.PadCoord, color uint8) (bool, error) {
	addr, ok := d.addrs.AddressOfPad(coord)
	if !ok {
		return false, nil
	}
	if err := send(padMessage(addr, color)); err != nil {
		return false, fmt.Errorf("set pad %s color: %w", coord, err)
	}
	return true, nil
}

func (d *Push2Device) SetButtonLight(send func(midi.Message) error, name controls.ControlName, light uint8) (bool, error) {
	addr, ok := d.addrs.AddressOfButton(name)
	if !ok {
		return false, nil
	}
	if err := send(midi.ControlChange(0, addr, light)); err != nil {
		return false, fmt.Errorf("set button %s light: %w", name, err)
	}
	return true, nil
}

func (d *Push2Device) ClearAll(send func(midi.Message) error) error {
	for _, addr := range d.addrs.PadAddresses() {
		if err := send(midi.NoteOff(0, addr)); err != nil {
			return fmt.Errorf("clear pad note %d: %w", addr, err)
		}
	}
	for _, addr := range d.addrs.ButtonAddresses() {
		if err := send(midi.ControlChange(0, addr, 0)); err != nil {
			return fmt.Errorf("clear button cc %d: %w", addr, err)
		}
	}
	return nil
}

// padMessage lights a pad with a palette index; index 0 is sent as note off.
func padMessage(addr, color uint8) midi.Message {
	if color == 0 {
		return midi.NoteOff(0, addr)
	}
	return midi.NoteOn(0, addr, color)
}
