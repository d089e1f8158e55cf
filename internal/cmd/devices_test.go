package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seagrayinc/g403-led/internal/hid"
)

const (
	pathConfig = `\\?\hid#vid_046d&pid_c083&mi_01&col04#8&2de99099&0&0003#{4d1e55b2-f16f-11cf-88cb-001111000030}`
	pathLED    = `\\?\hid#vid_046d&pid_c083&mi_01&col05#8&2de99099&0&0004#{4d1e55b2-f16f-11cf-88cb-001111000030}`
)

func TestListInterfacesLabelsRoles(t *testing.T) {
	mgr := hid.NewFakeManager(
		hid.Info{Path: pathLED, VendorID: 0x046D, ProductID: 0xC083, Product: "G403 Prodigy Gaming Mouse", Manufacturer: "Logitech"},
		hid.Info{Path: pathConfig, VendorID: 0x046D, ProductID: 0xC083, Product: "G403 Prodigy Gaming Mouse", Manufacturer: "Logitech"},
	)
	probe := func(vendorID, productID uint16) (bool, string) {
		t.Fatal("probe must not run when HID interfaces match")
		return false, ""
	}

	var out bytes.Buffer
	require.NoError(t, listInterfaces(&out, mgr, 0x046D, 0xC083, probe))

	assert.Contains(t, out.String(), "led")
	assert.Contains(t, out.String(), "config")
	assert.Contains(t, out.String(), pathLED)
	assert.Contains(t, out.String(), pathConfig)
}

func TestListInterfacesPrintsProbeDetail(t *testing.T) {
	tests := []struct {
		name    string
		present bool
		detail  string
	}{
		{
			name:    "DeviceAbsent",
			present: false,
			detail:  "device absent from the USB bus (3 other devices visible)",
		},
		{
			name:    "DevicePresentWithoutHID",
			present: true,
			detail:  "device is on the USB bus (2 raw interfaces) but exposes no matching HID interface; check drivers and permissions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := hid.NewFakeManager()
			probe := func(vendorID, productID uint16) (bool, string) {
				return tt.present, tt.detail
			}

			var out bytes.Buffer
			require.NoError(t, listInterfaces(&out, mgr, 0x046D, 0xC083, probe))

			assert.Contains(t, out.String(), "no HID interfaces found")
			assert.Contains(t, out.String(), tt.detail)
		})
	}
}
