package controls

// Push 2 live-port addresses. Pads are notes 36 (bottom-left) to 99
// (top-right); everything else is a control change.
var defaultButtons = map[uint8]ControlName{
	3:   TapTempo,
	9:   Metronome,
	118: Delete,
	119: Undo,
	60:  Mute,
	61:  Solo,
	29:  StopClip,
	35:  Convert,
	117: DoubleLoop,
	116: Quantize,
	88:  Duplicate,
	87:  New,
	90:  FixedLength,
	89:  Automate,
	86:  Record,
	85:  Play,

	102: UpperRow1,
	103: UpperRow2,
	104: UpperRow3,
	105: UpperRow4,
	106: UpperRow5,
	107: UpperRow6,
	108: UpperRow7,
	109: UpperRow8,

	20: LowerRow1,
	21: LowerRow2,
	22: LowerRow3,
	23: LowerRow4,
	24: LowerRow5,
	25: LowerRow6,
	26: LowerRow7,
	27: LowerRow8,

	// Scene column, top (1/4) to bottom (1/32t).
	43: Scene4,
	42: Scene4T,
	41: Scene8,
	40: Scene8T,
	39: Scene16,
	38: Scene16T,
	37: Scene32,
	36: Scene32T,

	30:  Setup,
	59:  User,
	52:  AddDevice,
	53:  AddTrack,
	110: Device,
	112: Mix,
	111: Browse,
	113: Clip,
	28:  Master,
	46:  Up,
	47:  Down,
	44:  Left,
	45:  Right,
	56:  Repeat,
	57:  Accent,
	58:  Scale,
	31:  Layout,
	50:  Note,
	51:  Session,
	55:  OctaveUp,
	54:  OctaveDown,
	62:  PageLeft,
	63:  PageRight,
	49:  Shift,
	48:  Select,
}

var defaultEncoders = map[uint8]EncoderName{
	14: Tempo,
	15: Swing,
	71: Track1,
	72: Track2,
	73: Track3,
	74: Track4,
	75: Track5,
	76: Track6,
	77: Track7,
	78: Track8,
	79: MasterVolume,
}

// FirstPadNote is the note sent by the bottom-left pad.
const FirstPadNote = 36

func defaultPads() map[uint8]PadCoord {
	pads := make(map[uint8]PadCoord, GridSize*GridSize)
	for y := uint8(0); y < GridSize; y++ {
		for x := uint8(0); x < GridSize; x++ {
			addr := FirstPadNote + (GridSize-1-y)*GridSize + x
			pads[addr] = PadCoord{X: x, Y: y}
		}
	}
	return pads
}

// Default returns the built-in Push 2 address map.
func Default() *AddressMap {
	m, err := NewAddressMap(defaultPads(), defaultButtons, defaultEncoders)
	if err != nil {
		panic("controls: built-in address map is invalid: " + err.Error())
	}
	return m
}
