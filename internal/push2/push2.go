// Package push2 ties the control plane and the display together into one
// device handle.
//
// A Device is not safe for concurrent use. The MIDI driver delivers input on
// its own goroutine, but that goroutine only appends to a queue; Poll, the
// light setters and display flushes all belong to the caller's goroutine.
package push2

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/PixPMusic/gopher-push/internal/controls"
	"github.com/PixPMusic/gopher-push/internal/display"
	"github.com/PixPMusic/gopher-push/internal/midi"
	"github.com/PixPMusic/gopher-push/internal/state"
	"github.com/google/uuid"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// ErrPortNotFound is returned by Open when a MIDI port cannot be matched.
var ErrPortNotFound = midi.ErrPortNotFound

// Input is the receiving half of the control plane.
type Input interface {
	Listen(fn func(msg []byte)) (stop func(), err error)
	Close() error
}

// Output is the sending half of the control plane.
type Output interface {
	Send(msg []byte) error
	Close() error
}

// Screen is the display's bulk endpoint.
type Screen interface {
	display.BulkWriter
	io.Closer
}

// Transports opens the three connections a Device owns. The program binds
// them to midi.Manager and usbscreen.Open.
type Transports struct {
	OpenInput  func(name string) (Input, error)
	OpenOutput func(name string) (Output, error)
	OpenScreen func() (Screen, error)
}

// Options configure Open.
type Options struct {
	InPort  string
	OutPort string

	// Addresses defaults to controls.Default().
	Addresses *controls.AddressMap

	EncoderMode  state.EncoderMode
	FlushTimeout time.Duration

	// ClearOnClose turns every light off before the ports close.
	ClearOnClose bool

	Logger *slog.Logger
}

// Device is an open surface.
type Device struct {
	in     Input
	out    Output
	screen Screen
	stop   func()

	queue   midi.Queue
	decoder midi.Device
	cache   *state.Cache
	disp    *display.Display

	clearOnClose bool
	closed       bool
	session      uuid.UUID
	log          *slog.Logger
}

// Open acquires the MIDI input, the MIDI output and the display, in that
// order, starts listening and turns every light off. If any step fails,
// everything acquired so far is released before the error is returned.
func Open(t Transports, opts Options) (d *Device, err error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	session := uuid.New()
	log = log.With("session", session.String())

	var closers []io.Closer
	defer func() {
		if err == nil {
			return
		}
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil {
				log.Warn("release after failed open", "err", cerr)
			}
		}
	}()

	in, err := t.OpenInput(opts.InPort)
	if err != nil {
		return nil, fmt.Errorf("open midi input: %w", err)
	}
	closers = append(closers, in)

	out, err := t.OpenOutput(opts.OutPort)
	if err != nil {
		return nil, fmt.Errorf("open midi output: %w", err)
	}
	closers = append(closers, out)

	screen, err := t.OpenScreen()
	if err != nil {
		return nil, fmt.Errorf("open display: %w", err)
	}
	closers = append(closers, screen)

	d = &Device{
		in:      in,
		out:     out,
		screen:  screen,
		decoder: midi.NewPush2Device(opts.Addresses),
		cache:   state.New(state.WithEncoderMode(opts.EncoderMode)),
		disp: display.New(screen,
			display.WithTimeout(opts.FlushTimeout),
			display.WithLogger(log)),
		clearOnClose: opts.ClearOnClose,
		session:      session,
		log:          log,
	}

	d.stop, err = in.Listen(d.queue.Push)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	closers = append(closers, stopper(d.stop))

	if err := d.ResetAllLights(); err != nil {
		return nil, fmt.Errorf("reset lights: %w", err)
	}

	log.Info("device opened", "in", opts.InPort, "out", opts.OutPort)
	return d, nil
}

type stopper func()

func (s stopper) Close() error {
	s()
	return nil
}

// Session identifies this connection in logs.
func (d *Device) Session() uuid.UUID {
	return d.session
}

// Poll returns the next decoded event, or false when no input is pending.
// Messages that do not decode are skipped. It never blocks.
func (d *Device) Poll() (controls.Event, bool) {
	for {
		msg, ok := d.queue.Pop()
		if !ok {
			return nil, false
		}
		ev, ok := d.decoder.HandleMessage(msg)
		if !ok {
			d.log.Debug("ignored midi message", "msg", fmt.Sprintf("% x", msg))
			continue
		}
		return d.cache.Apply(ev), true
	}
}

func (d *Device) send(msg gomidi.Message) error {
	return d.out.Send(msg)
}

// SetPadColor lights a pad with a palette index, 0 being off. Pads without
// an address are ignored. The cache is updated only after a successful send.
func (d *Device) SetPadColor(coord controls.PadCoord, color uint8) error {
	sent, err := d.decoder.SetPadColor(d.send, coord, color)
	if err != nil {
		return err
	}
	if sent {
		d.cache.SetPadColor(coord, color)
	}
	return nil
}

// SetButtonLight sets the light of a button, 0 being off.
func (d *Device) SetButtonLight(name controls.ControlName, light uint8) error {
	sent, err := d.decoder.SetButtonLight(d.send, name, light)
	if err != nil {
		return err
	}
	if sent {
		d.cache.SetButtonLight(name, light)
	}
	return nil
}

// ResetAllLights turns off every pad and button.
func (d *Device) ResetAllLights() error {
	if err := d.decoder.ClearAll(d.send); err != nil {
		return err
	}
	d.cache.ResetLights()
	return nil
}

// Display returns the screen. Flush it steadily; see package display.
func (d *Device) Display() *display.Display {
	return d.disp
}

// State returns the control snapshot. Treat it as read-only.
func (d *Device) State() *state.Cache {
	return d.cache
}

// Close stops listening, optionally turns the lights off, and releases the
// ports and the display. Every release is attempted; their errors are
// joined. Calling Close again is a no-op.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if d.stop != nil {
		d.stop()
	}

	var errs []error
	if d.clearOnClose {
		if err := d.ResetAllLights(); err != nil {
			errs = append(errs, fmt.Errorf("clear lights: %w", err))
		}
	}
	if err := d.in.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close midi input: %w", err))
	}
	if err := d.out.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close midi output: %w", err))
	}
	if err := d.screen.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close display: %w", err))
	}

	err := errors.Join(errs...)
	if err != nil {
		d.log.Warn("device closed with errors", "err", err)
	} else {
		d.log.Info("device closed")
	}
	return err
}
