package models

import "strconv"

// Tokens hddtemp sends in place of a numeric temperature.
const (
	SleepingToken      = "SLP"
	UnknownSensorToken = "UNK"
)

// TemperatureKind tells which variant a Temperature holds.
type TemperatureKind int

const (
	TemperatureAbsent TemperatureKind = iota
	TemperatureKnown
	TemperatureSleeping
	TemperatureSensorUnknown
)

// Temperature is a device reading: a number, a daemon sentinel, or nothing
// at all when the device was missing from the response.
type Temperature struct {
	Kind  TemperatureKind
	Value int    // valid for TemperatureKnown
	Raw   string // token as received; empty for TemperatureAbsent
}

// ParseTemperature interprets the raw temperature field of a record.
// Anything that is neither an integer nor SLP is treated as an unreadable sensor.
func ParseTemperature(raw string) Temperature {
	if v, err := strconv.Atoi(raw); err == nil {
		return Temperature{Kind: TemperatureKnown, Value: v, Raw: raw}
	}
	if raw == SleepingToken {
		return Temperature{Kind: TemperatureSleeping, Raw: raw}
	}
	return Temperature{Kind: TemperatureSensorUnknown, Raw: raw}
}

// String renders the reading for the human readable clause.
func (t Temperature) String() string {
	if t.Kind == TemperatureKnown {
		return strconv.Itoa(t.Value)
	}
	return t.Raw
}

// PerfValue renders the reading as a performance data value. An absent
// reading becomes "U", the undetermined value marker.
func (t Temperature) PerfValue() string {
	switch t.Kind {
	case TemperatureKnown:
		return strconv.Itoa(t.Value)
	case TemperatureAbsent:
		return "U"
	default:
		return t.Raw
	}
}
