// Package analytics computes time-windowed aggregations over a user's
// transactions: the spending trend (bucketed income/expense series) and the
// dashboard snapshot. All computation is pure and request-scoped; data access
// goes through the injected Store.
package analytics

import "time"

// Granularity is the bucket width used to group transactions.
type Granularity string

const (
	GranularityHour    Granularity = "hour"
	GranularityDay     Granularity = "day"
	GranularityISOWeek Granularity = "isoweek"
	GranularityMonth   Granularity = "month"
)

// LabelFunc renders one bucket key into its display string.
type LabelFunc func(key string) string

// Period is a resolved analytics window: transactions in [Start, now] are
// grouped at Granularity and rendered through Label.
type Period struct {
	Start       time.Time
	Granularity Granularity
	Label       LabelFunc
}

type trendSpec struct {
	window      time.Duration
	granularity Granularity
	label       LabelFunc
}

var trendPeriods = map[string]trendSpec{
	"24h":     {window: 24 * time.Hour, granularity: GranularityHour, label: labelHour},
	"week":    {window: 7 * 24 * time.Hour, granularity: GranularityDay, label: labelWeekday},
	"month":   {window: 30 * 24 * time.Hour, granularity: GranularityDay, label: labelDayOfMonth},
	"3months": {window: 90 * 24 * time.Hour, granularity: GranularityISOWeek, label: labelISOWeek},
	"6months": {window: 180 * 24 * time.Hour, granularity: GranularityMonth, label: labelMonth},
	"year":    {window: 365 * 24 * time.Hour, granularity: GranularityMonth, label: labelMonth},
}

const defaultTrendPeriod = "6months"

// ResolveTrendPeriod maps a period tag to its window, granularity and label
// strategy. Unrecognized tags fall back to 6 months; never an error.
func ResolveTrendPeriod(tag string, now time.Time) Period {
	spec, ok := trendPeriods[tag]
	if !ok {
		spec = trendPeriods[defaultTrendPeriod]
	}
	return Period{
		Start:       now.Add(-spec.window),
		Granularity: spec.granularity,
		Label:       spec.label,
	}
}

// ResolveDashboardPeriod maps a period tag to the dashboard's date range and
// its rendered period label. Unlike the trend resolver, "month" here anchors
// to the first instant of the current calendar month rather than a rolling
// 30 days. Unrecognized tags fall back to "month".
func ResolveDashboardPeriod(tag string, now time.Time) (time.Time, string) {
	switch tag {
	case "24h":
		return now.Add(-24 * time.Hour), "Last 24 Hours"
	case "week":
		return now.AddDate(0, 0, -7), "Last 7 Days"
	case "3months":
		start := now.AddDate(0, 0, -90)
		return start, "Last 3 Months (from " + start.Format("January 02, 2006") + ")"
	case "6months":
		start := now.AddDate(0, 0, -180)
		return start, "Last 6 Months (from " + start.Format("January 02, 2006") + ")"
	case "year":
		start := now.AddDate(0, 0, -365)
		return start, "Last Year (from " + start.Format("January 02, 2006") + ")"
	default: // "month" and anything unrecognized
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.Format("January 2006")
	}
}
