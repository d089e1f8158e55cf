package hid

// Device represents an opened HID device.
type Device interface {
	// WriteOutput issues a set-output-report control write. This is the
	// only write path the G403 lighting interfaces accept; interrupt
	// writes are dropped by the firmware without an error.
	WriteOutput(reportID byte, data []byte) error
	// ReportLens returns the input, output and feature report lengths
	// from the device descriptor.
	ReportLens() (inLen, outLen, featLen int)
	Close() error
}

// Info represents a HID device descriptor. Multi-interface devices appear
// once per interface, each with its own Path.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
}

// NewManager returns the OS-specific HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
