package dumper

import (
	"fmt"

	"github.com/karalabe/usb"
)

// vendorID/productID identify the INLRetro dumper on the USB bus.
const (
	vendorID  = 0x16c0
	productID = 0x05dc
)

// Device is the single primitive the driver needs from a USB transport: a
// control transfer that returns a status byte followed by a payload. The
// original treats the USB handle as a process-wide singleton; here it is an
// explicit handle threaded through every call instead.
type Device interface {
	// ControlTransfer issues request-type 0xC0 (device-to-host, vendor,
	// device), bRequest=category, wValue=value, wIndex=index, and reads
	// back length bytes. The first returned byte is a status code (0 =
	// success); callers that only care about success/failure pass
	// length=1 and ignore the remainder.
	ControlTransfer(category OpType, value, index uint16, length int) ([]byte, error)
	Close() error
}

// usbDevice adapts a karalabe/usb raw device to Device. The dumper's
// firmware frames each control request as a single HID-style report: byte 0
// is bmRequestType (always reqControlIn), byte 1 is bRequest, bytes 2-3 are
// wValue, bytes 4-5 are wIndex, little-endian, written over the device's
// interrupt OUT endpoint; the reply of the same length comes back over the
// IN endpoint with the status byte first.
type usbDevice struct {
	raw usb.Device
}

// OpenDevice enumerates USB devices for the dumper's vendor/product ID and
// opens the first match.
func OpenDevice() (Device, error) {
	infos, err := usb.EnumerateRaw(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("dumper: enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("dumper: no INLRetro device found (vendor %#04x product %#04x)", vendorID, productID)
	}
	raw, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("dumper: open: %w", err)
	}
	return &usbDevice{raw: raw}, nil
}

func (d *usbDevice) ControlTransfer(category OpType, value, index uint16, length int) ([]byte, error) {
	req := []byte{
		reqControlIn,
		byte(category),
		byte(value), byte(value >> 8),
		byte(index), byte(index >> 8),
	}
	if _, err := d.raw.Write(req); err != nil {
		return nil, fmt.Errorf("dumper: control-transfer write: %w", err)
	}
	resp := make([]byte, length)
	if _, err := d.raw.Read(resp); err != nil {
		return nil, fmt.Errorf("dumper: control-transfer read: %w", err)
	}
	return resp, nil
}

func (d *usbDevice) Close() error { return d.raw.Close() }
