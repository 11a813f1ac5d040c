package state

import (
	"math"
	"testing"

	"github.com/PixPMusic/gopher-push/internal/controls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDelta(t *testing.T) {
	tests := []struct {
		raw  uint8
		want int32
	}{
		{0, 0},
		{1, 1},
		{63, 63},
		{64, 64},
		{65, -63},
		{126, -2},
		{127, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeDelta(tt.raw), "raw %d", tt.raw)
	}
}

func TestDecodeDeltaRanges(t *testing.T) {
	for raw := 1; raw <= 63; raw++ {
		assert.Equal(t, int32(raw), DecodeDelta(uint8(raw)), "raw %d", raw)
	}
	for raw := 65; raw <= 127; raw++ {
		assert.Equal(t, int32(raw-128), DecodeDelta(uint8(raw)), "raw %d", raw)
	}
}

func TestApplyClampedStaysInRange(t *testing.T) {
	for raw := 0; raw < 128; raw++ {
		c := New()
		for i := 0; i < 3; i++ {
			ev := c.Apply(controls.EncoderTwisted{Name: controls.Track3, RawDelta: uint8(raw)})
			v := ev.(controls.EncoderTwisted).Value
			require.GreaterOrEqual(t, v, int32(EncoderMin), "raw %d", raw)
			require.LessOrEqual(t, v, int32(EncoderMax), "raw %d", raw)
		}
	}
}

func TestApplyPads(t *testing.T) {
	c := New()
	coord := controls.PadCoord{X: 2, Y: 5}

	c.Apply(controls.PadPressed{Coord: coord, Velocity: 90})
	assert.Equal(t, uint8(90), c.Pad(coord).Velocity)

	c.Apply(controls.PadReleased{Coord: coord})
	assert.Zero(t, c.Pad(coord).Velocity)

	assert.Equal(t, PadState{}, c.Pad(controls.PadCoord{X: 8, Y: 8}))
}

func TestApplyButtons(t *testing.T) {
	c := New()

	assert.Equal(t, ButtonState{}, c.Button(controls.Shift))

	c.Apply(controls.ButtonPressed{Name: controls.Shift, Velocity: 127})
	assert.Equal(t, uint8(127), c.Button(controls.Shift).Velocity)

	c.Apply(controls.ButtonReleased{Name: controls.Shift})
	assert.Zero(t, c.Button(controls.Shift).Velocity)
}

func TestApplySlider(t *testing.T) {
	c := New()
	c.Apply(controls.SliderMoved{Value: 12345})
	assert.Equal(t, uint16(12345), c.Slider())
}

func TestApplyEncoderClamped(t *testing.T) {
	c := New()

	ev := c.Apply(controls.EncoderTwisted{Name: controls.Track1, RawDelta: 5})
	tw, ok := ev.(controls.EncoderTwisted)
	require.True(t, ok)
	assert.Equal(t, int32(5), tw.Value)
	assert.Equal(t, uint8(5), tw.RawDelta)
	assert.Equal(t, int32(5), c.Encoder(controls.Track1).Value)

	ev = c.Apply(controls.EncoderTwisted{Name: controls.Track1, RawDelta: 127})
	assert.Equal(t, int32(4), ev.(controls.EncoderTwisted).Value)

	// Below zero clamps.
	ev = c.Apply(controls.EncoderTwisted{Name: controls.Track1, RawDelta: 65})
	assert.Equal(t, int32(0), ev.(controls.EncoderTwisted).Value)

	for i := 0; i < 3; i++ {
		c.Apply(controls.EncoderTwisted{Name: controls.Track1, RawDelta: 64})
	}
	assert.Equal(t, EncoderMax, c.Encoder(controls.Track1).Value)

	assert.Zero(t, c.Encoder(controls.Track2).Value)
}

func TestApplyEncoderUnbounded(t *testing.T) {
	c := New(WithEncoderRange(controls.Tempo, Unbounded))

	ev := c.Apply(controls.EncoderTwisted{Name: controls.Tempo, RawDelta: 127})
	assert.Equal(t, int32(-1), ev.(controls.EncoderTwisted).Value)

	// Others stay clamped.
	ev = c.Apply(controls.EncoderTwisted{Name: controls.Swing, RawDelta: 127})
	assert.Equal(t, int32(0), ev.(controls.EncoderTwisted).Value)
}

func TestApplyEncoderSaturates(t *testing.T) {
	c := New(WithEncoderMode(Unbounded))
	c.encoders[controls.Tempo] = &EncoderState{Value: math.MaxInt32 - 1}
	c.encoders[controls.Swing] = &EncoderState{Value: math.MinInt32 + 1}

	ev := c.Apply(controls.EncoderTwisted{Name: controls.Tempo, RawDelta: 10})
	assert.Equal(t, int32(math.MaxInt32), ev.(controls.EncoderTwisted).Value)

	ev = c.Apply(controls.EncoderTwisted{Name: controls.Swing, RawDelta: 100})
	assert.Equal(t, int32(math.MinInt32), ev.(controls.EncoderTwisted).Value)
}

func TestInputNeverTouchesOutput(t *testing.T) {
	c := New()
	coord := controls.PadCoord{X: 1, Y: 1}
	c.SetPadColor(coord, 9)
	c.SetButtonLight(controls.Play, 4)

	c.Apply(controls.PadPressed{Coord: coord, Velocity: 1})
	c.Apply(controls.PadReleased{Coord: coord})
	c.Apply(controls.ButtonPressed{Name: controls.Play, Velocity: 1})
	c.Apply(controls.ButtonReleased{Name: controls.Play})

	assert.Equal(t, uint8(9), c.Pad(coord).Color)
	assert.Equal(t, uint8(4), c.Button(controls.Play).Light)

	c.ResetLights()
	assert.Zero(t, c.Pad(coord).Color)
	assert.Zero(t, c.Button(controls.Play).Light)
}

func TestApplyPassesOtherEventsThrough(t *testing.T) {
	c := New()
	ev := controls.ButtonPressed{Name: controls.Play, Velocity: 3}
	assert.Equal(t, controls.Event(ev), c.Apply(ev))
}

func TestParseEncoderMode(t *testing.T) {
	m, err := ParseEncoderMode("unbounded")
	require.NoError(t, err)
	assert.Equal(t, Unbounded, m)

	m, err = ParseEncoderMode("")
	require.NoError(t, err)
	assert.Equal(t, Clamped, m)
	assert.Equal(t, "clamped", m.String())

	_, err = ParseEncoderMode("wrap")
	assert.Error(t, err)
}
