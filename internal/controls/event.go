package controls

import "fmt"

// Event is a decoded input from the surface. The concrete types are
// PadPressed, PadReleased, ButtonPressed, ButtonReleased, EncoderTwisted
// and SliderMoved.
type Event interface {
	fmt.Stringer
	event()
}

// PadPressed is sent when a grid pad is hit.
type PadPressed struct {
	Coord    PadCoord
	Velocity uint8
}

// PadReleased is sent when a grid pad is let go.
type PadReleased struct {
	Coord PadCoord
}

// ButtonPressed is sent when a named button goes down.
type ButtonPressed struct {
	Name     ControlName
	Velocity uint8
}

// ButtonReleased is sent when a named button comes back up.
type ButtonReleased struct {
	Name ControlName
}

// EncoderTwisted carries one relative encoder tick. RawDelta is the byte
// sent by the device; Value is the integrated position after the tick.
type EncoderTwisted struct {
	Name     EncoderName
	RawDelta uint8
	Value    int32
}

// SliderMoved carries the 14-bit touch strip position.
type SliderMoved struct {
	Value uint16
}

func (PadPressed) event()     {}
func (PadReleased) event()    {}
func (ButtonPressed) event()  {}
func (ButtonReleased) event() {}
func (EncoderTwisted) event() {}
func (SliderMoved) event()    {}

func (e PadPressed) String() string {
	return fmt.Sprintf("pad %s pressed (velocity %d)", e.Coord, e.Velocity)
}

func (e PadReleased) String() string {
	return fmt.Sprintf("pad %s released", e.Coord)
}

func (e ButtonPressed) String() string {
	return fmt.Sprintf("button %s pressed (velocity %d)", e.Name, e.Velocity)
}

func (e ButtonReleased) String() string {
	return fmt.Sprintf("button %s released", e.Name)
}

func (e EncoderTwisted) String() string {
	return fmt.Sprintf("encoder %s twisted (raw %d, value %d)", e.Name, e.RawDelta, e.Value)
}

func (e SliderMoved) String() string {
	return fmt.Sprintf("slider moved to %d", e.Value)
}
