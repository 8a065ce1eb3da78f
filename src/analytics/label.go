package analytics

import (
	"fmt"
	"time"
)

// Label formatters are pure functions of the bucket key. A key that fails to
// parse is returned as-is rather than producing an error; malformed keys can
// only come from a bug upstream and an odd label beats a dead chart.

func labelHour(key string) string {
	t, err := time.Parse("2006-01-02-15", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%02d:00", t.Hour())
}

func labelWeekday(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return t.Format("Mon 01/02")
}

func labelDayOfMonth(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return key
	}
	return t.Format("01/02")
}

func labelISOWeek(key string) string {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return key
	}
	return "Week " + isoWeekStart(year, week).Format("01/02")
}

func labelMonth(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2006")
}

// isoWeekStart returns the Monday of the given ISO week. January 4th is
// always inside ISO week 1, so week 1's Monday is recovered from it and the
// rest are whole-week offsets.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7 // Sunday is day 7 in ISO ordering
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7)
}
