package midi

// Status bytes on channel one. The surface only talks on channel one, so
// these are matched exactly.
const (
	StatusNoteOff       byte = 0x80 // 128
	StatusNoteOn        byte = 0x90 // 144
	StatusControlChange byte = 0xB0 // 176
	StatusPitchBend     byte = 0xE0 // 224
)

