package controls

import "fmt"

// PadCoord identifies one cell of the 8x8 grid. (0,0) is the top-left pad.
type PadCoord struct {
	X uint8 `yaml:"x" json:"x"`
	Y uint8 `yaml:"y" json:"y"`
}

// GridSize is the number of pads along each side of the grid.
const GridSize = 8

// Valid reports whether both coordinates are inside the grid.
func (c PadCoord) Valid() bool {
	return c.X < GridSize && c.Y < GridSize
}

func (c PadCoord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ControlName is one of the named buttons around the grid and display.
type ControlName uint8

const (
	TapTempo ControlName = iota
	Metronome
	Delete
	Undo
	Mute
	Solo
	StopClip
	Convert
	DoubleLoop
	Quantize
	Duplicate
	New
	FixedLength
	Automate
	Record
	Play

	// Buttons above the display
	UpperRow1
	UpperRow2
	UpperRow3
	UpperRow4
	UpperRow5
	UpperRow6
	UpperRow7
	UpperRow8

	// Buttons below the display
	LowerRow1
	LowerRow2
	LowerRow3
	LowerRow4
	LowerRow5
	LowerRow6
	LowerRow7
	LowerRow8

	// Scene / timing column right of the grid
	Scene4
	Scene4T
	Scene8
	Scene8T
	Scene16
	Scene16T
	Scene32
	Scene32T

	Setup
	User
	AddDevice
	AddTrack
	Device
	Mix
	Browse
	Clip
	Master
	Up
	Down
	Left
	Right
	Repeat
	Accent
	Scale
	Layout
	Note
	Session
	OctaveUp
	OctaveDown
	PageLeft
	PageRight
	Shift
	Select

	numControls
)

var controlNames = [numControls]string{
	TapTempo:    "tap_tempo",
	Metronome:   "metronome",
	Delete:      "delete",
	Undo:        "undo",
	Mute:        "mute",
	Solo:        "solo",
	StopClip:    "stop_clip",
	Convert:     "convert",
	DoubleLoop:  "double_loop",
	Quantize:    "quantize",
	Duplicate:   "duplicate",
	New:         "new",
	FixedLength: "fixed_length",
	Automate:    "automate",
	Record:      "record",
	Play:        "play",
	UpperRow1:   "upper_row_1",
	UpperRow2:   "upper_row_2",
	UpperRow3:   "upper_row_3",
	UpperRow4:   "upper_row_4",
	UpperRow5:   "upper_row_5",
	UpperRow6:   "upper_row_6",
	UpperRow7:   "upper_row_7",
	UpperRow8:   "upper_row_8",
	LowerRow1:   "lower_row_1",
	LowerRow2:   "lower_row_2",
	LowerRow3:   "lower_row_3",
	LowerRow4:   "lower_row_4",
	LowerRow5:   "lower_row_5",
	LowerRow6:   "lower_row_6",
	LowerRow7:   "lower_row_7",
	LowerRow8:   "lower_row_8",
	Scene4:      "scene_1_4",
	Scene4T:     "scene_1_4t",
	Scene8:      "scene_1_8",
	Scene8T:     "scene_1_8t",
	Scene16:     "scene_1_16",
	Scene16T:    "scene_1_16t",
	Scene32:     "scene_1_32",
	Scene32T:    "scene_1_32t",
	Setup:       "setup",
	User:        "user",
	AddDevice:   "add_device",
	AddTrack:    "add_track",
	Device:      "device",
	Mix:         "mix",
	Browse:      "browse",
	Clip:        "clip",
	Master:      "master",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	Repeat:      "repeat",
	Accent:      "accent",
	Scale:       "scale",
	Layout:      "layout",
	Note:        "note",
	Session:     "session",
	OctaveUp:    "octave_up",
	OctaveDown:  "octave_down",
	PageLeft:    "page_left",
	PageRight:   "page_right",
	Shift:       "shift",
	Select:      "select",
}

func (n ControlName) String() string {
	if n < numControls {
		return controlNames[n]
	}
	return fmt.Sprintf("control(%d)", uint8(n))
}

// ParseControlName returns the button whose String form is s.
func ParseControlName(s string) (ControlName, bool) {
	for i, name := range controlNames {
		if name == s {
			return ControlName(i), true
		}
	}
	return 0, false
}

// AllControls lists every button in declaration order.
func AllControls() []ControlName {
	out := make([]ControlName, numControls)
	for i := range out {
		out[i] = ControlName(i)
	}
	return out
}

// EncoderName is one of the eleven relative rotary encoders.
type EncoderName uint8

const (
	Tempo EncoderName = iota
	Swing
	Track1
	Track2
	Track3
	Track4
	Track5
	Track6
	Track7
	Track8
	MasterVolume

	numEncoders
)

var encoderNames = [numEncoders]string{
	Tempo:        "tempo",
	Swing:        "swing",
	Track1:       "track_1",
	Track2:       "track_2",
	Track3:       "track_3",
	Track4:       "track_4",
	Track5:       "track_5",
	Track6:       "track_6",
	Track7:       "track_7",
	Track8:       "track_8",
	MasterVolume: "master_volume",
}

func (n EncoderName) String() string {
	if n < numEncoders {
		return encoderNames[n]
	}
	return fmt.Sprintf("encoder(%d)", uint8(n))
}

// ParseEncoderName returns the encoder whose String form is s.
func ParseEncoderName(s string) (EncoderName, bool) {
	for i, name := range encoderNames {
		if name == s {
			return EncoderName(i), true
		}
	}
	return 0, false
}

// TrackIndex returns 0-7 for the track encoders above the display.
func (n EncoderName) TrackIndex() (int, bool) {
	if n >= Track1 && n <= Track8 {
		return int(n - Track1), true
	}
	return 0, false
}

// AllEncoders lists every encoder in declaration order.
func AllEncoders() []EncoderName {
	out := make([]EncoderName, numEncoders)
	for i := range out {
		out[i] = EncoderName(i)
	}
	return out
}
