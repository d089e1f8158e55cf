package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceFlagsIdentity(t *testing.T) {
	tests := []struct {
		vendor, product string
		vid, pid        uint16
	}{
		{"046d", "c083", 0x046D, 0xC083},
		{"0x046d", "0xC083", 0x046D, 0xC083},
		{"046D", "C083", 0x046D, 0xC083},
		{" 046d ", "c083", 0x046D, 0xC083},
		{"ffff", "0001", 0xFFFF, 0x0001},
	}
	for _, tt := range tests {
		t.Run(tt.vendor+"/"+tt.product, func(t *testing.T) {
			d := DeviceFlags{VendorID: tt.vendor, ProductID: tt.product}
			vid, pid, err := d.Identity()
			require.NoError(t, err)
			assert.Equal(t, tt.vid, vid)
			assert.Equal(t, tt.pid, pid)
		})
	}
}

func TestDeviceFlagsIdentityRejectsBadInput(t *testing.T) {
	bad := []DeviceFlags{
		{VendorID: "", ProductID: "c083"},
		{VendorID: "046d", ProductID: ""},
		{VendorID: "nope", ProductID: "c083"},
		{VendorID: "046d", ProductID: "10000"},
	}
	for _, d := range bad {
		_, _, err := d.Identity()
		assert.Error(t, err, "flags %+v should not parse", d)
	}
}
