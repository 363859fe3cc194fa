package utils

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{-3, ""},
		{45, "45min"},
		{60, "1h"},
		{90, "1h 30min"},
		{1440, "1d"},
		{1500, "1d 1h"},
		{1501, "1d 1h"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.minutes, nil); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDurationTranslated(t *testing.T) {
	units := &DurationUnits{Day: " jour", Days: " jours", Hour: "h", Hours: "h", Minute: " minute", Minutes: " minutes"}
	if got := FormatDuration(2*24*60+60, units); got != "2 jours 1h" {
		t.Errorf("unexpected translated duration %q", got)
	}
	if got := FormatDuration(1, units); got != "1 minute" {
		t.Errorf("unexpected singular minute %q", got)
	}
}

func TestFormatDurationCompact(t *testing.T) {
	if got := FormatDurationCompact(90); got != "1h 30m" {
		t.Errorf("expected 1h 30m, got %q", got)
	}
	if got := FormatDurationCompact(1500); got != "1d 1h" {
		t.Errorf("expected 1d 1h, got %q", got)
	}
}

func TestISODuration(t *testing.T) {
	ptr := func(n int) *int { return &n }
	tests := []struct {
		in   *int
		want string
	}{
		{ptr(90), "PT1H30M"},
		{ptr(45), "PT45M"},
		{ptr(120), "PT2H"},
	}
	for _, tt := range tests {
		got := ISODuration(tt.in)
		if got == nil || *got != tt.want {
			t.Errorf("ISODuration(%d) = %v, want %s", *tt.in, got, tt.want)
		}
	}
	if ISODuration(nil) != nil || ISODuration(ptr(0)) != nil {
		t.Error("expected nil for empty durations")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"chef@cuisto.app", "a.b@c.co"}
	invalid := []string{"", "chef", "chef@cuisto", "che f@cuisto.app", "@cuisto.app"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("expected %q to be invalid", e)
		}
	}
}
