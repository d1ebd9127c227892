package tcx

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	got, err := parseTime("2024-03-09T12:00:01.500Z")
	if err != nil {
		t.Fatalf("parseTime returned error: %v", err)
	}
	want := time.Date(2024, 3, 9, 12, 0, 1, 500_000_000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTime = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("parseTime location = %v, want UTC", got.Location())
	}
}

func TestParseTime_NoMillis(t *testing.T) {
	got, err := parseTime("2024-03-09T12:00:01Z")
	if err != nil {
		t.Fatalf("parseTime returned error: %v", err)
	}
	want := time.Date(2024, 3, 9, 12, 0, 1, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseTime = %v, want %v", got, want)
	}
}

func TestParseTime_Malformed(t *testing.T) {
	tests := []string{
		"2024-99-09T12:00:01.000Z",
		"2024-03-09T12:00:61.000Z",
		"T.Z",
		"",
	}
	for _, s := range tests {
		if _, err := parseTime(s); err == nil {
			t.Errorf("parseTime(%q) succeeded, want error", s)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 9, 12, 0, 1, 0, time.UTC), "2024-03-09T12:00:01.000Z"},
		{time.Date(2024, 3, 9, 12, 0, 1, 500_000_000, time.UTC), "2024-03-09T12:00:01.500Z"},
		{time.Date(2024, 3, 9, 13, 0, 1, 0, time.FixedZone("CET", 3600)), "2024-03-09T12:00:01.000Z"},
	}
	for _, tt := range tests {
		got := formatTime(tt.in)
		if got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTime_RoundTrip(t *testing.T) {
	const s = "2024-03-09T12:00:01.250Z"
	parsed, err := parseTime(s)
	if err != nil {
		t.Fatalf("parseTime returned error: %v", err)
	}
	if got := formatTime(parsed); got != s {
		t.Errorf("round trip = %q, want %q", got, s)
	}
}

func TestScanTimes_DocumentOrder(t *testing.T) {
	content := trackpointDoc(
		"2024-03-09T12:00:00.000Z",
		"2024-03-09T12:00:01.000Z",
		"2024-03-09T12:00:02.000Z",
	)

	raw, times, err := scanTimes(content)
	if err != nil {
		t.Fatalf("scanTimes returned error: %v", err)
	}
	if len(raw) != 3 || len(times) != 3 {
		t.Fatalf("scanTimes returned %d raw, %d parsed, want 3 each", len(raw), len(times))
	}
	if raw[0] != "2024-03-09T12:00:00.000Z" {
		t.Errorf("raw[0] = %q", raw[0])
	}
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			t.Errorf("times out of order at %d: %v then %v", i, times[i-1], times[i])
		}
	}
}

func TestScanTimes_IgnoresOtherElements(t *testing.T) {
	content := `<Notes>not a timestamp</Notes><DistanceMeters>12.5</DistanceMeters>`
	raw, _, err := scanTimes(content)
	if err != nil {
		t.Fatalf("scanTimes returned error: %v", err)
	}
	if len(raw) != 0 {
		t.Errorf("scanTimes found %d timestamps, want 0", len(raw))
	}
}
