package g403

import (
	"fmt"

	"github.com/karalabe/usb"

	"github.com/seagrayinc/g403-led/internal/hid"
)

// Discover lists the HID interfaces reporting the given vendor and product
// IDs. A multi-interface device contributes one entry per interface. Zero
// matches and several matches are both normal outcomes; the caller decides
// what to do with them.
func Discover(mgr hid.Manager, vendorID, productID uint16) ([]hid.Info, error) {
	devs, err := mgr.List()
	if err != nil {
		return nil, fmt.Errorf("enumerate HID devices: %w", err)
	}

	var out []hid.Info
	for _, d := range devs {
		if d.VendorID == vendorID && d.ProductID == productID {
			out = append(out, d)
		}
	}
	return out, nil
}

// ProbeRawBus checks the raw USB bus for the device, bypassing the HID
// driver stack. It distinguishes an unplugged device from one that is
// present but exposes no usable HID interface, which usually points at
// drivers or permissions. The returned detail is meant for error messages
// and diagnostics output.
func ProbeRawBus(vendorID, productID uint16) (present bool, detail string) {
	infos, err := usb.Enumerate(vendorID, productID)
	if err != nil {
		return false, fmt.Sprintf("raw USB enumerate failed: %v", err)
	}
	if len(infos) > 0 {
		return true, fmt.Sprintf("device is on the USB bus (%d raw interfaces) but exposes no matching HID interface; check drivers and permissions", len(infos))
	}

	all, err := usb.Enumerate(0, 0)
	if err != nil {
		return false, fmt.Sprintf("device absent; enumerate all failed: %v", err)
	}
	return false, fmt.Sprintf("device absent from the USB bus (%d other devices visible)", len(all))
}
