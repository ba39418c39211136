package domain

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-01-15T08:30:00Z", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"2024-01-15T08:30:00", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
		{"Jan 15 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"Jan 15, 2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"  2024-01-15  ", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if !ok {
			t.Errorf("ParseDate(%q): not parsed", tc.in)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-date", "2024-13-45", "yesterday"} {
		if _, ok := ParseDate(in); ok {
			t.Errorf("ParseDate(%q): expected failure", in)
		}
	}
}

func TestFormatDate(t *testing.T) {
	// Day-of-month is zero padded, matching the wire contract.
	got := FormatDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if got != "Mon Jan 01 2024" {
		t.Errorf("FormatDate: got %q, want %q", got, "Mon Jan 01 2024")
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	want := time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC)
	parsed, ok := ParseDate(FormatDate(want))
	if !ok {
		t.Fatal("formatted date did not parse back")
	}
	if !parsed.Equal(want) {
		t.Errorf("round trip: got %v, want %v", parsed, want)
	}
}
