package service

import (
	"errors"
	"fmt"
	"strings"

	"check_hddtemp/internal/models"
)

// recordFields is the number of fields hddtemp sends per drive:
// device, model, temperature, scale.
const recordFields = 4

// ErrResponseTooShort is returned for an empty daemon response.
var ErrResponseTooShort = errors.New("server response too short")

// ParseError reports a record that does not have exactly four fields.
type ParseError struct {
	Chunk  string
	Fields int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("server response parsing error: record %q has %d fields, want %d", e.Chunk, e.Fields, recordFields)
}

// ParseResponse splits a daemon response into records keyed by device id.
//
// Records are separated by a doubled separator and their fields by a single
// one, e.g. "|/dev/sda|WDC|35|C||/dev/sdb|ST|SLP|*|". A later record for an
// already seen device replaces the earlier one.
func ParseResponse(response, sep string) (map[string]models.RawDeviceRecord, error) {
	if strings.TrimSpace(response) == "" {
		return nil, ErrResponseTooShort
	}

	chunks := strings.Split(response, sep+sep)
	records := make(map[string]models.RawDeviceRecord, len(chunks))
	for _, chunk := range chunks {
		fields := strings.Split(strings.Trim(chunk, sep), sep)
		if len(fields) != recordFields {
			return nil, &ParseError{Chunk: chunk, Fields: len(fields)}
		}
		records[fields[0]] = models.RawDeviceRecord{
			DeviceID:    fields[0],
			Model:       fields[1],
			Temperature: fields[2],
			Scale:       fields[3],
		}
	}
	return records, nil
}
