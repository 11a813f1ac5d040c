// Package usbscreen opens the display's bulk endpoint with libusb.
package usbscreen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/gousb"
)

// USB identity of the display.
const (
	VendorID  gousb.ID = 0x2982
	ProductID gousb.ID = 0x1967

	bulkOutEndpoint = 0x01
)

// ErrDeviceNotFound is returned when no display is attached.
var ErrDeviceNotFound = errors.New("display device not found")

// Screen is the bulk OUT endpoint of the display, claimed on interface 0.
type Screen struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	done func()
	ep   *gousb.OutEndpoint
}

// Open finds the display, detaches any kernel driver and claims
// interface 0.
func Open() (*Screen, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(VendorID, ProductID)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open usb %s:%s: %w", VendorID, ProductID, err)
	}
	if dev == nil {
		ctx.Close()
		return nil, fmt.Errorf("usb %s:%s: %w", VendorID, ProductID, ErrDeviceNotFound)
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb auto detach: %w", err)
	}

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim usb interface: %w", err)
	}

	ep, err := intf.OutEndpoint(bulkOutEndpoint)
	if err != nil {
		done()
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb endpoint %d: %w", bulkOutEndpoint, err)
	}

	return &Screen{ctx: ctx, dev: dev, done: done, ep: ep}, nil
}

// WriteBulk sends p in one transfer, giving up after timeout.
func (u *Screen) WriteBulk(p []byte, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := u.ep.WriteContext(ctx, p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// Close releases the interface, the device and the USB context.
func (u *Screen) Close() error {
	u.done()
	return errors.Join(u.dev.Close(), u.ctx.Close())
}
