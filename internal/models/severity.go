package models

import nagios "github.com/atc0005/go-nagios"

// Severity is the classification of a single device or of a whole check.
// Lower priority values are more urgent.
type Severity int

const (
	SeverityCritical Severity = iota + 1
	SeverityWarning
	SeverityUnknown
	SeverityOK
	SeveritySleeping
)

const sleepingLabel = "SLEEPING"

// Severities lists every severity from most to least urgent.
var Severities = []Severity{
	SeverityCritical,
	SeverityWarning,
	SeverityUnknown,
	SeverityOK,
	SeveritySleeping,
}

// Priority returns the ordering weight used to pick the overall status.
func (s Severity) Priority() int {
	return int(s)
}

// String returns the upper-case label printed at the start of the status line.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return nagios.StateCRITICALLabel
	case SeverityWarning:
		return nagios.StateWARNINGLabel
	case SeverityUnknown:
		return nagios.StateUNKNOWNLabel
	case SeverityOK:
		return nagios.StateOKLabel
	case SeveritySleeping:
		return sleepingLabel
	default:
		return nagios.StateUNKNOWNLabel
	}
}

// ExitCode maps the severity to the plugin exit code.
// A sleeping drive is not a problem, so it exits like OK.
func (s Severity) ExitCode() int {
	switch s {
	case SeverityOK, SeveritySleeping:
		return nagios.StateOKExitCode
	case SeverityWarning:
		return nagios.StateWARNINGExitCode
	case SeverityCritical:
		return nagios.StateCRITICALExitCode
	default:
		return nagios.StateUNKNOWNExitCode
	}
}
