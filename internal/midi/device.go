package midi

import (
	"github.com/PixPMusic/gopher-push/internal/controls"
	"gitlab.com/gomidi/midi/v2"
)

// Device represents a control surface that speaks the note/CC protocol.
type Device interface {
	// HandleMessage decodes one raw message into an event.
	// Returns ok=false for malformed, unmapped or unrelated messages.
	HandleMessage(msg []byte) (ev controls.Event, ok bool)

	// SetPadColor sends the colour of a grid pad.
	// Returns sent=false without error when the pad has no address.
	SetPadColor(send func(midi.Message) error, coord controls.PadCoord, color uint8) (sent bool, err error)

	// SetButtonLight sends the light value of a named button.
	SetButtonLight(send func(midi.Message) error, name controls.ControlName, light uint8) (sent bool, err error)

	// ClearAll turns off every pad and button light.
	ClearAll(send func(midi.Message) error) error
}
