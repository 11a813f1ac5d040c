package controls

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesRoundTrip(t *testing.T) {
	for _, n := range AllControls() {
		got, ok := ParseControlName(n.String())
		require.True(t, ok, "parse %s", n)
		assert.Equal(t, n, got)
	}
	for _, n := range AllEncoders() {
		got, ok := ParseEncoderName(n.String())
		require.True(t, ok, "parse %s", n)
		assert.Equal(t, n, got)
	}

	_, ok := ParseControlName("no_such_button")
	assert.False(t, ok)
	_, ok = ParseEncoderName("")
	assert.False(t, ok)

	assert.Equal(t, "control(200)", ControlName(200).String())
	assert.Len(t, AllEncoders(), 11)
}

func TestTrackIndex(t *testing.T) {
	i, ok := Track1.TrackIndex()
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = Track8.TrackIndex()
	assert.True(t, ok)
	assert.Equal(t, 7, i)

	_, ok = Tempo.TrackIndex()
	assert.False(t, ok)
	_, ok = MasterVolume.TrackIndex()
	assert.False(t, ok)
}

func TestDefaultMapPads(t *testing.T) {
	m := Default()

	c, ok := m.LookupPad(36)
	require.True(t, ok)
	assert.Equal(t, PadCoord{X: 0, Y: 7}, c, "bottom-left")

	c, ok = m.LookupPad(92)
	require.True(t, ok)
	assert.Equal(t, PadCoord{X: 0, Y: 0}, c, "top-left")

	c, ok = m.LookupPad(99)
	require.True(t, ok)
	assert.Equal(t, PadCoord{X: 7, Y: 0}, c, "top-right")

	_, ok = m.LookupPad(35)
	assert.False(t, ok)
	_, ok = m.LookupPad(100)
	assert.False(t, ok)

	assert.Len(t, m.PadAddresses(), 64)
	for y := uint8(0); y < GridSize; y++ {
		for x := uint8(0); x < GridSize; x++ {
			coord := PadCoord{X: x, Y: y}
			addr, ok := m.AddressOfPad(coord)
			require.True(t, ok)
			back, ok := m.LookupPad(addr)
			require.True(t, ok)
			assert.Equal(t, coord, back)
		}
	}

	_, ok = m.AddressOfPad(PadCoord{X: 8, Y: 0})
	assert.False(t, ok)
}

func TestDefaultMapButtonsAndEncoders(t *testing.T) {
	m := Default()

	for _, n := range AllControls() {
		addr, ok := m.AddressOfButton(n)
		require.True(t, ok, "button %s has no address", n)
		back, ok := m.LookupButton(addr)
		require.True(t, ok)
		assert.Equal(t, n, back)

		_, isEncoder := m.LookupEncoder(addr)
		assert.False(t, isEncoder, "button %s shares address %d with an encoder", n, addr)
	}
	for _, n := range AllEncoders() {
		addr, ok := m.AddressOfEncoder(n)
		require.True(t, ok, "encoder %s has no address", n)
		back, ok := m.LookupEncoder(addr)
		require.True(t, ok)
		assert.Equal(t, n, back)
	}

	name, ok := m.LookupButton(85)
	require.True(t, ok)
	assert.Equal(t, Play, name)

	enc, ok := m.LookupEncoder(71)
	require.True(t, ok)
	assert.Equal(t, Track1, enc)

	_, ok = m.LookupButton(0)
	assert.False(t, ok)
	_, ok = m.LookupEncoder(0)
	assert.False(t, ok)
}

func TestDefaultMapSceneColumn(t *testing.T) {
	m := Default()

	scenes := []ControlName{Scene4, Scene4T, Scene8, Scene8T, Scene16, Scene16T, Scene32, Scene32T}
	for i, n := range scenes {
		addr, ok := m.AddressOfButton(n)
		require.True(t, ok)
		assert.Equal(t, uint8(43-i), addr, "%s", n)
	}
}

func TestNewAddressMapRejects(t *testing.T) {
	tests := []struct {
		name     string
		pads     map[uint8]PadCoord
		buttons  map[uint8]ControlName
		encoders map[uint8]EncoderName
	}{
		{
			name: "pad outside grid",
			pads: map[uint8]PadCoord{36: {X: 8, Y: 0}},
		},
		{
			name: "pad on two addresses",
			pads: map[uint8]PadCoord{36: {X: 1, Y: 1}, 37: {X: 1, Y: 1}},
		},
		{
			name:    "button on two addresses",
			buttons: map[uint8]ControlName{3: Play, 4: Play},
		},
		{
			name:     "button and encoder share an address",
			buttons:  map[uint8]ControlName{14: Play},
			encoders: map[uint8]EncoderName{14: Tempo},
		},
		{
			name:     "encoder on two addresses",
			encoders: map[uint8]EncoderName{14: Tempo, 15: Tempo},
		},
		{
			name:    "unknown control",
			buttons: map[uint8]ControlName{3: numControls},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddressMap(tt.pads, tt.buttons, tt.encoders)
			assert.Error(t, err)
		})
	}
}

func TestNewAddressMapAllowsNoteAndCCOverlap(t *testing.T) {
	m, err := NewAddressMap(
		map[uint8]PadCoord{36: {X: 0, Y: 7}},
		map[uint8]ControlName{36: Scene4},
		nil,
	)
	require.NoError(t, err)

	c, ok := m.LookupPad(36)
	assert.True(t, ok)
	assert.Equal(t, PadCoord{X: 0, Y: 7}, c)

	n, ok := m.LookupButton(36)
	assert.True(t, ok)
	assert.Equal(t, Scene32T, n)
}

func TestMarshalParseRoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	require.NoError(t, err)

	m, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, Default().Equal(m))
}

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`
pads:
  60: {x: 3, y: 4}
buttons:
  85: play
encoders:
  71: track_1
`))
	require.NoError(t, err)

	c, ok := m.LookupPad(60)
	require.True(t, ok)
	assert.Equal(t, PadCoord{X: 3, Y: 4}, c)

	n, ok := m.LookupButton(85)
	require.True(t, ok)
	assert.Equal(t, Play, n)

	e, ok := m.LookupEncoder(71)
	require.True(t, ok)
	assert.Equal(t, Track1, e)

	assert.False(t, Default().Equal(m))
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "pads: [",
		"unknown button":  "buttons: {3: launch_rocket}",
		"unknown encoder": "encoders: {14: volume_knob}",
		"overlap":         "buttons: {14: play}\nencoders: {14: tempo}",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "push2.yaml")

	data, err := Default().Marshal()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, Default().Equal(m))

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestEventStrings(t *testing.T) {
	events := []Event{
		PadPressed{Coord: PadCoord{X: 1, Y: 2}, Velocity: 100},
		PadReleased{Coord: PadCoord{X: 1, Y: 2}},
		ButtonPressed{Name: Play, Velocity: 127},
		ButtonReleased{Name: Play},
		EncoderTwisted{Name: Track3, RawDelta: 1, Value: 5},
		SliderMoved{Value: 8192},
	}
	want := []string{
		"pad (1,2) pressed (velocity 100)",
		"pad (1,2) released",
		"button play pressed (velocity 127)",
		"button play released",
		"encoder track_3 twisted (raw 1, value 5)",
		"slider moved to 8192",
	}
	for i, ev := range events {
		assert.Equal(t, want[i], ev.String())
	}
}
