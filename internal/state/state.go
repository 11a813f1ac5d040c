// Package state keeps the last known value of every control on the surface.
//
// A Cache is owned by a single goroutine and does no locking.
package state

import (
	"fmt"
	"math"

	"github.com/PixPMusic/gopher-push/internal/controls"
)

// PadState is the input and output state of one grid pad.
type PadState struct {
	Velocity uint8 // last press velocity, 0 when released
	Color    uint8 // palette index last sent to the pad
}

// ButtonState is the input and output state of one named button.
type ButtonState struct {
	Velocity uint8
	Light    uint8
}

// EncoderState is the integrated position of one encoder.
type EncoderState struct {
	Value int32
}

// EncoderMode selects how encoder ticks are integrated.
type EncoderMode int

const (
	// Clamped keeps the value within [EncoderMin, EncoderMax].
	Clamped EncoderMode = iota
	// Unbounded lets the value run across the whole int32 range, saturating at the ends.
	Unbounded
)

// Bounds of a Clamped encoder.
const (
	EncoderMin int32 = 0
	EncoderMax int32 = 127
)

func (m EncoderMode) String() string {
	switch m {
	case Clamped:
		return "clamped"
	case Unbounded:
		return "unbounded"
	}
	return fmt.Sprintf("EncoderMode(%d)", int(m))
}

// ParseEncoderMode parses "clamped" or "unbounded".
func ParseEncoderMode(s string) (EncoderMode, error) {
	switch s {
	case "clamped", "":
		return Clamped, nil
	case "unbounded":
		return Unbounded, nil
	}
	return 0, fmt.Errorf("unknown encoder mode %q", s)
}

// Cache is the authoritative snapshot of the surface.
type Cache struct {
	pads     [controls.GridSize][controls.GridSize]PadState
	buttons  map[controls.ControlName]*ButtonState
	encoders map[controls.EncoderName]*EncoderState
	slider   uint16

	mode  EncoderMode
	modes map[controls.EncoderName]EncoderMode
}

// Option configures a Cache.
type Option func(*Cache)

// WithEncoderMode sets the mode used by every encoder without its own setting.
func WithEncoderMode(m EncoderMode) Option {
	return func(c *Cache) { c.mode = m }
}

// WithEncoderRange sets the mode of a single encoder.
func WithEncoderRange(name controls.EncoderName, m EncoderMode) Option {
	return func(c *Cache) { c.modes[name] = m }
}

// New returns a cache with every control at rest.
func New(opts ...Option) *Cache {
	c := &Cache{
		buttons:  make(map[controls.ControlName]*ButtonState),
		encoders: make(map[controls.EncoderName]*EncoderState),
		modes:    make(map[controls.EncoderName]EncoderMode),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DecodeDelta turns a relative encoder byte into a signed step. Values above
// 64 are two's complement over seven bits, so 127 is -1 and 65 is -63; 64
// itself counts as +64.
func DecodeDelta(raw uint8) int32 {
	if raw > 64 {
		return -(128 - int32(raw))
	}
	return int32(raw)
}

// Apply folds an input event into the cache. For EncoderTwisted the returned
// event carries the encoder's new position in Value; other events are
// returned unchanged. Output fields (Color, Light) are never touched.
func (c *Cache) Apply(ev controls.Event) controls.Event {
	switch e := ev.(type) {
	case controls.PadPressed:
		if e.Coord.Valid() {
			c.pads[e.Coord.Y][e.Coord.X].Velocity = e.Velocity
		}
	case controls.PadReleased:
		if e.Coord.Valid() {
			c.pads[e.Coord.Y][e.Coord.X].Velocity = 0
		}
	case controls.ButtonPressed:
		c.button(e.Name).Velocity = e.Velocity
	case controls.ButtonReleased:
		c.button(e.Name).Velocity = 0
	case controls.EncoderTwisted:
		enc := c.encoder(e.Name)
		enc.Value = c.step(e.Name, enc.Value, DecodeDelta(e.RawDelta))
		e.Value = enc.Value
		return e
	case controls.SliderMoved:
		c.slider = e.Value
	}
	return ev
}

func (c *Cache) step(name controls.EncoderName, v, delta int32) int32 {
	mode, ok := c.modes[name]
	if !ok {
		mode = c.mode
	}
	sum := int64(v) + int64(delta)
	switch mode {
	case Unbounded:
		return int32(min(max(sum, math.MinInt32), math.MaxInt32))
	default:
		return int32(min(max(sum, int64(EncoderMin)), int64(EncoderMax)))
	}
}

func (c *Cache) button(name controls.ControlName) *ButtonState {
	b, ok := c.buttons[name]
	if !ok {
		b = &ButtonState{}
		c.buttons[name] = b
	}
	return b
}

func (c *Cache) encoder(name controls.EncoderName) *EncoderState {
	e, ok := c.encoders[name]
	if !ok {
		e = &EncoderState{}
		c.encoders[name] = e
	}
	return e
}

// Pad returns the state of a pad. Coordinates off the grid read as zero.
func (c *Cache) Pad(coord controls.PadCoord) PadState {
	if !coord.Valid() {
		return PadState{}
	}
	return c.pads[coord.Y][coord.X]
}

// Button returns the state of a button, zero if it was never seen.
func (c *Cache) Button(name controls.ControlName) ButtonState {
	if b, ok := c.buttons[name]; ok {
		return *b
	}
	return ButtonState{}
}

// Encoder returns the state of an encoder, zero if it was never turned.
func (c *Cache) Encoder(name controls.EncoderName) EncoderState {
	if e, ok := c.encoders[name]; ok {
		return *e
	}
	return EncoderState{}
}

// Slider returns the last touch strip position.
func (c *Cache) Slider() uint16 {
	return c.slider
}

// SetPadColor records the colour last sent to a pad.
func (c *Cache) SetPadColor(coord controls.PadCoord, color uint8) {
	if coord.Valid() {
		c.pads[coord.Y][coord.X].Color = color
	}
}

// SetButtonLight records the light value last sent to a button.
func (c *Cache) SetButtonLight(name controls.ControlName, light uint8) {
	c.button(name).Light = light
}

// ResetLights zeroes every recorded pad colour and button light.
func (c *Cache) ResetLights() {
	for y := range c.pads {
		for x := range c.pads[y] {
			c.pads[y][x].Color = 0
		}
	}
	for _, b := range c.buttons {
		b.Light = 0
	}
}
