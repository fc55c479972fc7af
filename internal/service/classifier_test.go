package service

import (
	"testing"

	"check_hddtemp/internal/models"
)

var defaultThresholds = models.Thresholds{Warning: 40, Critical: 65}

func record(id, temp string) models.RawDeviceRecord {
	return models.RawDeviceRecord{DeviceID: id, Model: "HARD DRIVE", Temperature: temp, Scale: "C"}
}

func TestClassify_ThresholdBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		temp string
		want models.Severity
	}{
		{"-3", models.SeverityOK},
		{"27", models.SeverityOK},
		{"40", models.SeverityOK},
		{"41", models.SeverityWarning},
		{"64", models.SeverityWarning},
		{"65", models.SeverityOK},
		{"66", models.SeverityCritical},
		{"120", models.SeverityCritical},
		{"SLP", models.SeveritySleeping},
		{"UNK", models.SeverityUnknown},
		{"garbage", models.SeverityUnknown},
	}

	for _, tc := range cases {
		recs := map[string]models.RawDeviceRecord{"/dev/sda": record("/dev/sda", tc.temp)}
		got := Classify(recs, nil, defaultThresholds)["/dev/sda"]
		if got.Severity != tc.want {
			t.Errorf("temperature %s: want %s, got %s", tc.temp, tc.want, got.Severity)
		}
		if got.Priority != tc.want.Priority() {
			t.Errorf("temperature %s: priority want %d, got %d", tc.temp, tc.want.Priority(), got.Priority)
		}
	}
}

func TestClassify_AllDevicesWhenNoneRequested(t *testing.T) {
	t.Parallel()

	recs := map[string]models.RawDeviceRecord{
		"/dev/sda": record("/dev/sda", "27"),
		"/dev/sdb": record("/dev/sdb", "69"),
	}
	got := Classify(recs, nil, defaultThresholds)
	if len(got) != 2 {
		t.Fatalf("want 2 states, got %d", len(got))
	}
	if got["/dev/sdb"].Severity != models.SeverityCritical {
		t.Errorf("/dev/sdb: want CRITICAL, got %s", got["/dev/sdb"].Severity)
	}
	if got["/dev/sda"].Model != "HARD DRIVE" {
		t.Errorf("model not carried: %+v", got["/dev/sda"])
	}
}

func TestClassify_RequestedSubsetAndMissing(t *testing.T) {
	t.Parallel()

	recs := map[string]models.RawDeviceRecord{
		"/dev/sda": record("/dev/sda", "27"),
		"/dev/sdb": record("/dev/sdb", "69"),
	}
	got := Classify(recs, []string{"/dev/sda", "", "/dev/sdz"}, defaultThresholds)

	if len(got) != 2 {
		t.Fatalf("want 2 states (blank skipped, sdb not requested), got %d: %v", len(got), got)
	}
	if _, ok := got["/dev/sdb"]; ok {
		t.Errorf("/dev/sdb was not requested")
	}

	missing := got["/dev/sdz"]
	if missing.Severity != models.SeverityUnknown {
		t.Errorf("missing device: want UNKNOWN, got %s", missing.Severity)
	}
	if missing.Render.Temperature.Kind != models.TemperatureAbsent || missing.Render.Scale != "" {
		t.Errorf("missing device must have absent temperature/scale, got %+v", missing.Render)
	}
	if missing.Render.Warning != 40 || missing.Render.Critical != 65 {
		t.Errorf("missing device must carry thresholds, got %+v", missing.Render)
	}
}

func TestClassify_BlankOnlyRequestYieldsNothing(t *testing.T) {
	t.Parallel()

	recs := map[string]models.RawDeviceRecord{"/dev/sda": record("/dev/sda", "27")}
	if got := Classify(recs, []string{"", ""}, defaultThresholds); len(got) != 0 {
		t.Errorf("want no states, got %v", got)
	}
}
