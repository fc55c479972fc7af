package metrics

import (
	"fmt"

	"check_hddtemp/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CheckMetrics holds the gauges describing one finished check.
type CheckMetrics struct {
	registry *prometheus.Registry

	// DeviceTemperature is the last known temperature of a drive
	DeviceTemperature *prometheus.GaugeVec
	// DeviceStatus is the per-drive exit code, labelled with its severity
	DeviceStatus *prometheus.GaugeVec
	// CheckStatus is the exit code of the whole check
	CheckStatus prometheus.Gauge
}

// NewCheckMetrics registers the gauges on a private registry so nothing
// from the default Go collectors ends up in the textfile.
func NewCheckMetrics() *CheckMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &CheckMetrics{
		registry: reg,
		DeviceTemperature: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hddtemp_device_temperature",
				Help: "Drive temperature reported by hddtemp",
			},
			[]string{"device", "model", "scale"},
		),
		DeviceStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hddtemp_device_status",
				Help: "Per-drive check status (0 ok, 1 warning, 2 critical, 3 unknown)",
			},
			[]string{"device", "severity"},
		),
		CheckStatus: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hddtemp_check_status",
				Help: "Overall check status (0 ok, 1 warning, 2 critical, 3 unknown)",
			},
		),
	}
}

// Observe records the devices and overall severity of a check.
func (m *CheckMetrics) Observe(devices []models.DeviceState, overall models.Severity) {
	for _, st := range devices {
		if st.Render.Temperature.Kind == models.TemperatureKnown {
			m.DeviceTemperature.WithLabelValues(st.DeviceID, st.Model, st.Render.Scale).
				Set(float64(st.Render.Temperature.Value))
		}
		m.DeviceStatus.WithLabelValues(st.DeviceID, st.Severity.String()).
			Set(float64(st.Severity.ExitCode()))
	}
	m.CheckStatus.Set(float64(overall.ExitCode()))
}

// WriteTextfile atomically writes the gauges in the node_exporter textfile format.
func (m *CheckMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}
