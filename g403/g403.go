// Package g403 drives the RGB lighting of a Logitech G403 Prodigy gaming
// mouse over its vendor HID interfaces, without the vendor software.
//
// The mouse exposes several HID interfaces. Two of them matter here: the
// configuration sub-interface, which accepts a one-shot initialization
// command that takes the lighting out of onboard-memory mode, and the LED
// sub-interface, which accepts the lighting commands built by package
// hidpp. Both are located by path markers, opened exclusively, and held
// until Close.
//
// A Conn performs synchronous, blocking I/O and is not safe for concurrent
// use; callers serialize access themselves. One connection per process is
// the expected arrangement.
package g403

import (
	"errors"
	"strings"
)

// Identity of the G403 Prodigy. Connect accepts overrides for sibling
// devices that speak the same lighting protocol.
const (
	LogitechVID uint16 = 0x046D
	G403PID     uint16 = 0xC083
)

// Path markers for the two vendor sub-interfaces. The HID stack encodes
// interface and collection numbers into the device path (mi_01&col04 on
// Windows); marker matching is done on the lowercased path.
const (
	markerConfig = "mi_01&col04"
	markerLED    = "mi_01&col05"
)

var (
	// ErrDeviceNotFound means no HID interface reported the expected
	// vendor and product IDs.
	ErrDeviceNotFound = errors.New("g403: device not found")

	// ErrLEDInterfaceMissing means the device was found but its LED
	// command sub-interface was not, so no lighting command could ever
	// be delivered.
	ErrLEDInterfaceMissing = errors.New("g403: LED interface missing")

	// ErrNotConnected is returned by Send before Connect or after Close.
	ErrNotConnected = errors.New("g403: not connected")
)

// IsLEDInterface reports whether a device path names the lighting command
// sub-interface. Path substring selection is a heuristic: the path format
// is driver dependent and not contractual, but it has been stable across
// the Windows HID stack versions this package was developed against.
func IsLEDInterface(path string) bool {
	return strings.Contains(strings.ToLower(path), markerLED)
}

// IsConfigInterface reports whether a device path names the configuration
// sub-interface that accepts the initialization command.
func IsConfigInterface(path string) bool {
	return strings.Contains(strings.ToLower(path), markerConfig)
}

// Status describes the state of a connection.
type Status struct {
	Connected   bool
	LEDPath     string
	ConfigPath  string
	Initialized bool
	Warning     string
}

// Degraded reports whether the connection can send commands but with
// reduced guarantees: the configuration interface was unavailable or the
// initialization command failed. Lighting commands may be ignored by the
// firmware until onboard memory is disabled some other way.
func (s Status) Degraded() bool {
	return s.Connected && (s.ConfigPath == "" || !s.Initialized)
}
