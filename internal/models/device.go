package models

// RawDeviceRecord is one device as tokenized from the daemon response.
type RawDeviceRecord struct {
	DeviceID    string
	Model       string
	Temperature string // integer literal or sentinel token
	Scale       string
}

// Thresholds holds the configured warning and critical temperatures.
type Thresholds struct {
	Warning  int
	Critical int
}

// RenderData is what the renderer needs to print one device.
type RenderData struct {
	Device      string
	Temperature Temperature
	Scale       string // empty when the device is absent
	Warning     int
	Critical    int
}

// DeviceState is the classification result for one requested device.
type DeviceState struct {
	DeviceID string
	Model    string // empty when the device is absent
	Severity Severity
	Priority int
	Render   RenderData
}
