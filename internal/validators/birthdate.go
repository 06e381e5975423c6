package validators

import "time"

const birthDateLayout = "2006-01-02"

// ParseBirthDate accepts YYYY-MM-DD dates that are not in the future.
func ParseBirthDate(raw string, now time.Time) (time.Time, bool) {
	t, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}

	if t.After(now) {
		return time.Time{}, false
	}

	return t, true
}
