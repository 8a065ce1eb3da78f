package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fintrack-server/src/models"
)

// TrendPoint is one rendered bucket in the spending-trend series.
type TrendPoint struct {
	Period   string  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

type bucket struct {
	income   float64
	expenses float64
}

// BucketKey derives the grouping key for a timestamp at the given
// granularity. Every component is zero-padded to a fixed width so that
// lexicographic order over keys equals chronological order — BuildTrend
// depends on that to sort buckets with a plain string sort.
func BucketKey(t time.Time, g Granularity) string {
	switch g {
	case GranularityHour:
		return t.Format("2006-01-02-15")
	case GranularityDay:
		return t.Format("2006-01-02")
	case GranularityISOWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return t.Format("2006-01")
	}
}

// BuildTrend groups transactions into buckets at the period's granularity and
// returns one TrendPoint per non-empty bucket, in chronological order. It is
// a pure function of its inputs; an empty input yields an empty slice.
func BuildTrend(txs []models.Transaction, p Period) []TrendPoint {
	buckets := make(map[string]*bucket)
	for _, tx := range txs {
		key := BucketKey(tx.Date, p.Granularity)
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		if tx.Type == models.TransactionIncome {
			b.income += tx.Amount
		} else {
			b.expenses += tx.Amount
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]
		points = append(points, TrendPoint{
			Period:   p.Label(key),
			Income:   b.income,
			Expenses: b.expenses,
			Net:      b.income - b.expenses,
		})
	}
	return points
}

// SpendingTrend resolves the period tag, fetches the user's transactions in
// range and returns the bucketed series.
func SpendingTrend(ctx context.Context, store Store, userID, periodTag string, now time.Time) ([]TrendPoint, error) {
	p := ResolveTrendPeriod(periodTag, now)
	txs, err := store.FindTransactions(ctx, userID, p.Start, now)
	if err != nil {
		return nil, err
	}
	return BuildTrend(txs, p), nil
}
