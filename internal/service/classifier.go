package service

import (
	"check_hddtemp/internal/models"
)

// Classify produces one DeviceState per requested device. An empty
// request list means every device found in records. Blank ids are skipped.
func Classify(records map[string]models.RawDeviceRecord, devices []string, th models.Thresholds) map[string]models.DeviceState {
	if len(devices) == 0 {
		devices = make([]string, 0, len(records))
		for id := range records {
			devices = append(devices, id)
		}
	}

	states := make(map[string]models.DeviceState, len(devices))
	for _, id := range devices {
		if id == "" {
			continue
		}
		rec, ok := records[id]
		if !ok {
			states[id] = absentState(id, th)
			continue
		}
		states[id] = classifyRecord(rec, th)
	}
	return states
}

// absentState describes a requested device the daemon did not report.
func absentState(id string, th models.Thresholds) models.DeviceState {
	return newDeviceState(id, "", models.SeverityUnknown, models.RenderData{
		Device:   id,
		Warning:  th.Warning,
		Critical: th.Critical,
	})
}

func classifyRecord(rec models.RawDeviceRecord, th models.Thresholds) models.DeviceState {
	temp := models.ParseTemperature(rec.Temperature)
	return newDeviceState(rec.DeviceID, rec.Model, classifyTemperature(temp, th), models.RenderData{
		Device:      rec.DeviceID,
		Temperature: temp,
		Scale:       rec.Scale,
		Warning:     th.Warning,
		Critical:    th.Critical,
	})
}

// classifyTemperature applies the thresholds. Both comparisons are strict,
// so a reading equal to the critical threshold is still OK.
func classifyTemperature(temp models.Temperature, th models.Thresholds) models.Severity {
	switch temp.Kind {
	case models.TemperatureSleeping:
		return models.SeveritySleeping
	case models.TemperatureKnown:
		switch t := temp.Value; {
		case t > th.Critical:
			return models.SeverityCritical
		case t > th.Warning && t < th.Critical:
			return models.SeverityWarning
		default:
			return models.SeverityOK
		}
	default:
		return models.SeverityUnknown
	}
}

func newDeviceState(id, model string, sev models.Severity, render models.RenderData) models.DeviceState {
	return models.DeviceState{
		DeviceID: id,
		Model:    model,
		Severity: sev,
		Priority: sev.Priority(),
		Render:   render,
	}
}
