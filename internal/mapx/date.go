package mapx

import "time"

var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.DateTime,
}

// CheckDate reports whether date is a parseable calendar date or datetime.
// Year-only values are rejected as ambiguous.
func CheckDate(date string) bool {
	if len(date) == 4 {
		return false
	}

	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, date); err == nil {
			return true
		}
	}

	return false
}
