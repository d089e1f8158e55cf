package g403

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/seagrayinc/g403-led/hidpp"
	"github.com/seagrayinc/g403-led/internal/hid"
)

const (
	pathConfig = `\\?\hid#vid_046d&pid_c083&mi_01&col04#8&2de99099&0&0003#{4d1e55b2-f16f-11cf-88cb-001111000030}`
	pathLED    = `\\?\hid#vid_046d&pid_c083&mi_01&col05#8&2de99099&0&0004#{4d1e55b2-f16f-11cf-88cb-001111000030}`
	pathMouse  = `\\?\hid#vid_046d&pid_c083&mi_00#8&1a2b3c4d&0&0000#{4d1e55b2-f16f-11cf-88cb-001111000030}`
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func g403Info(path string) hid.Info {
	return hid.Info{
		Path:         path,
		VendorID:     LogitechVID,
		ProductID:    G403PID,
		Product:      "G403 Prodigy Gaming Mouse",
		Manufacturer: "Logitech",
	}
}

func testOptions() Options {
	return Options{Logger: quietLogger()}
}

func TestConnectOpensBothInterfaces(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathMouse), g403Info(pathConfig), g403Info(pathLED))

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	status := conn.Status()
	if !status.Connected {
		t.Error("status not connected")
	}
	if status.LEDPath != pathLED {
		t.Errorf("LED path = %q, want %q", status.LEDPath, pathLED)
	}
	if status.ConfigPath != pathConfig {
		t.Errorf("config path = %q, want %q", status.ConfigPath, pathConfig)
	}
	if !status.Initialized {
		t.Error("initialization did not run")
	}
	if status.Degraded() {
		t.Errorf("connection degraded: %q", status.Warning)
	}

	// The generic mouse interface must stay untouched.
	if _, ok := mgr.Opened[pathMouse]; ok {
		t.Error("opened the pointer interface")
	}

	// The initialization command goes to the configuration interface.
	config := mgr.Opened[pathConfig]
	if config == nil || len(config.Writes) != 1 {
		t.Fatalf("config writes = %+v, want exactly one", config)
	}
	init := hidpp.EncodeInit()
	if config.Writes[0].ReportID != init[0] {
		t.Errorf("init report ID = %02x, want %02x", config.Writes[0].ReportID, init[0])
	}
	if !bytes.Equal(config.Writes[0].Data, init[1:]) {
		t.Errorf("init payload = %x, want %x", config.Writes[0].Data, init[1:])
	}

	// Nothing is written to the LED interface during Connect.
	if led := mgr.Opened[pathLED]; len(led.Writes) != 0 {
		t.Errorf("LED writes during connect = %d, want 0", len(led.Writes))
	}
}

func TestConnectDegradedWithoutConfigInterface(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathMouse), g403Info(pathLED))

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	status := conn.Status()
	if !status.Connected {
		t.Error("status not connected")
	}
	if status.Initialized {
		t.Error("initialized without a configuration interface")
	}
	if status.ConfigPath != "" {
		t.Errorf("config path = %q, want empty", status.ConfigPath)
	}
	if status.Warning == "" {
		t.Error("no warning recorded")
	}
	if !status.Degraded() {
		t.Error("status not degraded")
	}

	// Sending still works on the mandatory interface.
	if err := conn.SetColor(0, 0, 255); err != nil {
		t.Fatalf("SetColor on degraded connection failed: %v", err)
	}
	if got := len(mgr.Opened[pathLED].Writes); got != 1 {
		t.Errorf("LED writes = %d, want 1", got)
	}
}

func TestConnectDegradedWhenConfigOpenFails(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	mgr.OpenErrs[pathConfig] = errors.New("access denied")

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	status := conn.Status()
	if !status.Degraded() {
		t.Error("status not degraded")
	}
	if status.Initialized {
		t.Error("initialized despite failed open")
	}
	if status.ConfigPath != "" {
		t.Errorf("config path = %q, want empty", status.ConfigPath)
	}
}

func TestConnectDegradedWhenInitRejected(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	mgr.WriteErrs[pathConfig] = errors.New("request rejected")

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	status := conn.Status()
	if status.Initialized {
		t.Error("initialized despite rejected write")
	}
	if status.Warning == "" {
		t.Error("no warning recorded")
	}
	if status.ConfigPath != pathConfig {
		t.Errorf("config path = %q, want %q", status.ConfigPath, pathConfig)
	}
	if !status.Degraded() {
		t.Error("status not degraded")
	}
}

func TestConnectFailsWithoutLEDInterface(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathMouse), g403Info(pathConfig))

	_, err := Connect(mgr, testOptions())
	if !errors.Is(err, ErrLEDInterfaceMissing) {
		t.Fatalf("error = %v, want ErrLEDInterfaceMissing", err)
	}

	// The configuration interface must not be left open.
	if len(mgr.Opened) != 0 {
		t.Errorf("interfaces left open: %d", len(mgr.Opened))
	}
}

func TestConnectFailsWhenDeviceAbsent(t *testing.T) {
	mgr := hid.NewFakeManager(
		hid.Info{Path: "some-keyboard", VendorID: 0x046D, ProductID: 0xC33A},
	)

	_, err := Connect(mgr, testOptions())
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("error = %v, want ErrDeviceNotFound", err)
	}
}

func TestConnectFailsWhenLEDOpenFails(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	openErr := errors.New("sharing violation")
	mgr.OpenErrs[pathLED] = openErr

	_, err := Connect(mgr, testOptions())
	if !errors.Is(err, openErr) {
		t.Fatalf("error = %v, want wrapped %v", err, openErr)
	}
	if len(mgr.Opened) != 0 {
		t.Errorf("interfaces left open: %d", len(mgr.Opened))
	}
}

func TestSendRecordsExactBytes(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	if err := conn.SetColor(255, 0, 0); err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}

	want, err := hidpp.EncodeFixedColor(255, 0, 0)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	led := mgr.Opened[pathLED]
	if len(led.Writes) != 1 {
		t.Fatalf("LED writes = %d, want 1", len(led.Writes))
	}
	if led.Writes[0].ReportID != want[0] {
		t.Errorf("report ID = %02x, want %02x", led.Writes[0].ReportID, want[0])
	}
	if !bytes.Equal(led.Writes[0].Data, want[1:]) {
		t.Errorf("payload = %x, want %x", led.Writes[0].Data, want[1:])
	}
}

func TestSendOperations(t *testing.T) {
	tests := []struct {
		name string
		send func(*Conn) error
	}{
		{"SetEffectBreathe", func(c *Conn) error { return c.SetEffect(hidpp.Breathe{R: 0, G: 128, B: 255, SpeedMs: 3000}) }},
		{"SetEffectCycle", func(c *Conn) error { return c.SetEffect(hidpp.Cycle{SpeedMs: 8000}) }},
		{"SetBrightness", func(c *Conn) error { return c.SetBrightness(75) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
			conn, err := Connect(mgr, testOptions())
			if err != nil {
				t.Fatalf("Connect failed: %v", err)
			}
			defer conn.Close()

			if err := tt.send(conn); err != nil {
				t.Fatalf("send failed: %v", err)
			}

			led := mgr.Opened[pathLED]
			if len(led.Writes) != 1 {
				t.Fatalf("LED writes = %d, want 1", len(led.Writes))
			}
			if got := len(led.Writes[0].Data) + 1; got != hidpp.ReportLength {
				t.Errorf("report length = %d, want %d", got, hidpp.ReportLength)
			}
		})
	}
}

func TestSendValidationFailureWritesNothing(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	if err := conn.SetColor(300, 0, 0); !hidpp.IsValidationError(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if err := conn.SetEffect(hidpp.Cycle{SpeedMs: 100}); !hidpp.IsValidationError(err) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if err := conn.SetBrightness(101); !hidpp.IsValidationError(err) {
		t.Fatalf("error = %v, want validation error", err)
	}

	if got := len(mgr.Opened[pathLED].Writes); got != 0 {
		t.Errorf("LED writes = %d, want 0", got)
	}
}

func TestSendRejectsWrongLength(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	if err := conn.Send([]byte{0x11, 0xFF}); err == nil {
		t.Error("short buffer accepted")
	}
}

func TestSendPropagatesWriteError(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathLED))
	writeErr := errors.New("device removed")
	mgr.WriteErrs[pathLED] = writeErr

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	if err := conn.SetColor(1, 2, 3); !errors.Is(err, writeErr) {
		t.Errorf("error = %v, want wrapped %v", err, writeErr)
	}
}

func TestConnectWarnsOnShortOutputReports(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	mgr.OutLens[pathLED] = 8

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	status := conn.Status()
	if !status.Initialized {
		t.Error("initialization did not run")
	}
	if !strings.Contains(status.Warning, "8-byte") {
		t.Errorf("warning = %q, want the reported length mentioned", status.Warning)
	}
	if status.Degraded() {
		t.Error("short reports alone must not degrade the connection")
	}

	// Commands still go out; the firmware gets to decide.
	if err := conn.SetColor(255, 255, 255); err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}
}

func TestConnectJoinsWarnings(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathLED))
	mgr.OutLens[pathLED] = 8

	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer conn.Close()

	warning := conn.Status().Warning
	for _, want := range []string{"too short", "configuration interface not found"} {
		if !strings.Contains(warning, want) {
			t.Errorf("warning = %q, missing %q", warning, want)
		}
	}
}

func TestCloseIdempotent(t *testing.T) {
	mgr := hid.NewFakeManager(g403Info(pathConfig), g403Info(pathLED))
	conn, err := Connect(mgr, testOptions())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	if err := conn.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	if !mgr.Opened[pathLED].Closed || !mgr.Opened[pathConfig].Closed {
		t.Error("interface handles not released")
	}
	if conn.Status().Connected {
		t.Error("status still connected after Close")
	}

	if err := conn.SetColor(1, 2, 3); !errors.Is(err, ErrNotConnected) {
		t.Errorf("send after close = %v, want ErrNotConnected", err)
	}

	var zero Conn
	if err := zero.Close(); err != nil {
		t.Errorf("Close on never connected Conn = %v, want nil", err)
	}
}
