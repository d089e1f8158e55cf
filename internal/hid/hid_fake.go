package hid

// FakeWrite is one output report recorded by a FakeDevice.
type FakeWrite struct {
	ReportID byte
	Data     []byte
}

// FakeDevice records output reports in memory. It backs tests that need to
// observe exactly what would reach the hardware.
type FakeDevice struct {
	Info     Info
	Writes   []FakeWrite
	Closed   bool
	WriteErr error // returned by WriteOutput when set
	OutLen   int
}

func (d *FakeDevice) WriteOutput(reportID byte, data []byte) error {
	if d.WriteErr != nil {
		return d.WriteErr
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	d.Writes = append(d.Writes, FakeWrite{ReportID: reportID, Data: cp})
	return nil
}

func (d *FakeDevice) ReportLens() (int, int, int) { return 0, d.OutLen, 0 }

func (d *FakeDevice) Close() error {
	d.Closed = true
	return nil
}

// FakeManager serves a fixed device list and hands out FakeDevices. Opened
// devices stay reachable through the Opened map so tests can inspect their
// recorded writes after the fact.
type FakeManager struct {
	Devices   []Info
	ListErr   error
	OpenErrs  map[string]error // keyed by path
	WriteErrs map[string]error // installed on devices opened at that path
	OutLens   map[string]int   // output report length per path, 20 when unset
	Opened    map[string]*FakeDevice
}

func NewFakeManager(devices ...Info) *FakeManager {
	return &FakeManager{
		Devices:   devices,
		OpenErrs:  map[string]error{},
		WriteErrs: map[string]error{},
		OutLens:   map[string]int{},
		Opened:    map[string]*FakeDevice{},
	}
}

func (m *FakeManager) List() ([]Info, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Devices, nil
}

func (m *FakeManager) Open(info Info) (Device, error) {
	if err := m.OpenErrs[info.Path]; err != nil {
		return nil, err
	}
	outLen := m.OutLens[info.Path]
	if outLen == 0 {
		outLen = 20
	}
	d := &FakeDevice{
		Info:     info,
		OutLen:   outLen,
		WriteErr: m.WriteErrs[info.Path],
	}
	m.Opened[info.Path] = d
	return d, nil
}
