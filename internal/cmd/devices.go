package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/seagrayinc/g403-led/g403"
	"github.com/seagrayinc/g403-led/internal/hid"
)

// DevicesCmd lists the HID interfaces exposed by matching devices.
type DevicesCmd struct{}

// Run is called by Kong when the devices command is executed.
func (c *DevicesCmd) Run(device *DeviceFlags) error {
	vid, pid, err := device.Identity()
	if err != nil {
		return err
	}

	mgr, err := hid.NewManager()
	if err != nil {
		return err
	}
	return listInterfaces(os.Stdout, mgr, vid, pid, g403.ProbeRawBus)
}

// listInterfaces prints the matching HID interfaces with their role, or the
// raw-bus probe verdict when none match, so an absent device and an
// inaccessible one read differently.
func listInterfaces(w io.Writer, mgr hid.Manager, vid, pid uint16, probe func(vendorID, productID uint16) (bool, string)) error {
	infos, err := g403.Discover(mgr, vid, pid)
	if err != nil {
		return err
	}

	if len(infos) == 0 {
		fmt.Fprintf(w, "no HID interfaces found for VID:0x%04X PID:0x%04X\n", vid, pid)
		_, detail := probe(vid, pid)
		fmt.Fprintln(w, detail)
		return nil
	}

	for _, info := range infos {
		role := "-"
		switch {
		case g403.IsLEDInterface(info.Path):
			role = "led"
		case g403.IsConfigInterface(info.Path):
			role = "config"
		}
		fmt.Fprintf(w, "%-6s  %s %s\n", role, info.Manufacturer, info.Product)
		fmt.Fprintf(w, "        %s\n", info.Path)
	}
	return nil
}
