// Package display drives the 960x160 screen: an in-memory framebuffer with
// drawing helpers and the masked frame encoding. The USB endpoint lives in
// package usbscreen.
//
// The screen goes dark about two seconds after the last frame, so callers
// flush at a steady rate (60 Hz works well) even when nothing changed.
package display

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultTimeout bounds each bulk write of a flush.
const DefaultTimeout = time.Second

// BulkWriter sends one bulk transfer to the display endpoint.
type BulkWriter interface {
	WriteBulk(p []byte, timeout time.Duration) error
}

// WriteError reports a failed transfer. Op is "header" or "frame".
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("display: write %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Display is a framebuffer bound to a transport.
type Display struct {
	*Framebuffer

	w       BulkWriter
	timeout time.Duration
	buf     []byte
	log     *slog.Logger
	frames  uint64
}

// Option configures a Display.
type Option func(*Display)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(disp *Display) {
		if d > 0 {
			disp.timeout = d
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(disp *Display) { disp.log = l }
}

// New returns a black display writing through w.
func New(w BulkWriter, opts ...Option) *Display {
	d := &Display{
		Framebuffer: NewFramebuffer(),
		w:           w,
		timeout:     DefaultTimeout,
		buf:         make([]byte, FrameSize),
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Flush encodes the framebuffer and sends the header and frame. Errors are
// returned as *WriteError and not retried.
func (d *Display) Flush() error {
	d.buf = EncodeFrame(d.Framebuffer, d.buf)

	if err := d.w.WriteBulk(Header[:], d.timeout); err != nil {
		return &WriteError{Op: "header", Err: err}
	}
	if err := d.w.WriteBulk(d.buf, d.timeout); err != nil {
		return &WriteError{Op: "frame", Err: err}
	}

	d.frames++
	if d.frames == 1 {
		d.log.Debug("first frame sent", "bytes", len(d.buf))
	}
	return nil
}

// Frames returns the number of frames sent so far.
func (d *Display) Frames() uint64 {
	return d.frames
}
