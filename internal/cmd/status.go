package cmd

import (
	"fmt"
	"log/slog"
)

// StatusCmd connects to the device and reports the connection state.
type StatusCmd struct{}

// Run is called by Kong when the status command is executed.
func (c *StatusCmd) Run(logger *slog.Logger, device *DeviceFlags) error {
	conn, err := connect(device, logger)
	if err != nil {
		fmt.Println("status: disconnected")
		return err
	}
	defer conn.Close()

	st := conn.Status()
	if st.Degraded() {
		fmt.Println("status: connected (degraded)")
	} else {
		fmt.Println("status: connected")
	}
	fmt.Printf("led interface:    %s\n", st.LEDPath)
	if st.ConfigPath != "" {
		fmt.Printf("config interface: %s\n", st.ConfigPath)
	} else {
		fmt.Println("config interface: not found")
	}
	fmt.Printf("initialized:      %v\n", st.Initialized)
	if st.Warning != "" {
		fmt.Printf("warning:          %s\n", st.Warning)
	}
	return nil
}
