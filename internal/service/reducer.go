package service

import (
	"errors"

	"check_hddtemp/internal/models"
)

// ErrNoDevices is returned when there is nothing to reduce or render.
var ErrNoDevices = errors.New("no devices to check")

// OverallSeverity picks the most urgent severity among states.
func OverallSeverity(states map[string]models.DeviceState) (models.Severity, error) {
	if len(states) == 0 {
		return models.SeverityUnknown, ErrNoDevices
	}
	overall := models.SeveritySleeping
	for _, st := range states {
		if st.Priority < overall.Priority() {
			overall = st.Severity
		}
	}
	return overall, nil
}
