package service

import (
	"fmt"
	"sort"
	"strings"

	"check_hddtemp/internal/models"
)

// SortStates orders devices most severe first, then by device id.
func SortStates(states map[string]models.DeviceState) []models.DeviceState {
	sorted := make([]models.DeviceState, 0, len(states))
	for _, st := range states {
		sorted = append(sorted, st)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority < sorted[j].Priority
		}
		return sorted[i].DeviceID < sorted[j].DeviceID
	})
	return sorted
}

// Render builds the status line and the plugin exit code.
func Render(states map[string]models.DeviceState, overall models.Severity, perfData bool) (string, int) {
	sorted := SortStates(states)

	clauses := make([]string, 0, len(sorted))
	for _, st := range sorted {
		clauses = append(clauses, deviceClause(st))
	}

	var b strings.Builder
	b.WriteString(overall.String())
	b.WriteString(": ")
	b.WriteString(strings.Join(clauses, ", "))
	if perfData {
		b.WriteString(" | ")
		b.WriteString(perfDataTokens(sorted))
	}
	b.WriteString("\n")

	return b.String(), overall.ExitCode()
}

func deviceClause(st models.DeviceState) string {
	r := st.Render
	switch st.Severity {
	case models.SeverityCritical:
		return fmt.Sprintf("device %s temperature %s%s exceeds critical temperature threshold %d%s",
			r.Device, r.Temperature, r.Scale, r.Critical, r.Scale)
	case models.SeverityWarning:
		return fmt.Sprintf("device %s temperature %s%s exceeds warning temperature threshold %d%s",
			r.Device, r.Temperature, r.Scale, r.Warning, r.Scale)
	case models.SeverityOK:
		return fmt.Sprintf("device %s is functional and stable %s%s", r.Device, r.Temperature, r.Scale)
	case models.SeveritySleeping:
		return fmt.Sprintf("device %s is sleeping", r.Device)
	default:
		return fmt.Sprintf("device %s temperature info not found in server response or can't be recognized", r.Device)
	}
}

// perfDataTokens joins device=value pairs with "; ".
func perfDataTokens(sorted []models.DeviceState) string {
	tokens := make([]string, 0, len(sorted))
	for _, st := range sorted {
		tokens = append(tokens, st.Render.Device+"="+st.Render.Temperature.PerfValue())
	}
	return strings.Join(tokens, "; ")
}
