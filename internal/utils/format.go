package utils

import (
	"fmt"
	"strings"
)

type DurationUnits struct {
	Day     string
	Days    string
	Hour    string
	Hours   string
	Minute  string
	Minutes string
}

var defaultUnits = DurationUnits{
	Day: "d", Days: "d",
	Hour: "h", Hours: "h",
	Minute: "min", Minutes: "min",
}

// FormatDuration renders minutes as "1d 1h", "1h 30min" or "45min".
// Minutes are dropped once the duration reaches a full day.
func FormatDuration(totalMinutes int, units *DurationUnits) string {
	if totalMinutes <= 0 {
		return ""
	}
	u := defaultUnits
	if units != nil {
		u = *units
	}

	days, hours, minutes := splitMinutes(totalMinutes)
	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", days, plural(days, u.Day, u.Days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d%s", hours, plural(hours, u.Hour, u.Hours)))
	}
	if minutes > 0 && days == 0 {
		parts = append(parts, fmt.Sprintf("%d%s", minutes, plural(minutes, u.Minute, u.Minutes)))
	}
	if len(parts) == 0 {
		return "0" + u.Minutes
	}
	return strings.Join(parts, " ")
}

// FormatDurationCompact is the card variant: "1h 30m".
func FormatDurationCompact(totalMinutes int) string {
	return FormatDuration(totalMinutes, &DurationUnits{
		Day: "d", Days: "d",
		Hour: "h", Hours: "h",
		Minute: "m", Minutes: "m",
	})
}

// ISODuration converts minutes to an ISO 8601 duration (PT1H30M).
// Nil means the duration should be omitted.
func ISODuration(minutes *int) *string {
	if minutes == nil || *minutes <= 0 {
		return nil
	}
	hours := *minutes / 60
	mins := *minutes % 60
	d := "PT"
	if hours > 0 {
		d += fmt.Sprintf("%dH", hours)
	}
	if mins > 0 {
		d += fmt.Sprintf("%dM", mins)
	}
	return &d
}

func splitMinutes(total int) (days, hours, minutes int) {
	days = total / (24 * 60)
	hours = (total % (24 * 60)) / 60
	minutes = total % 60
	return
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
