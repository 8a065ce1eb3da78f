package analytics

import (
	"reflect"
	"testing"
	"time"

	"fintrack-server/src/models"
)

func expense(amount float64, date time.Time) models.Transaction {
	return models.Transaction{Amount: amount, Type: models.TransactionExpense, Date: date}
}

func income(amount float64, date time.Time) models.Transaction {
	return models.Transaction{Amount: amount, Type: models.TransactionIncome, Date: date}
}

func TestBucketKeyFixedWidth(t *testing.T) {
	ts := time.Date(2026, 3, 5, 7, 15, 0, 0, time.UTC)

	tests := []struct {
		granularity Granularity
		want        string
	}{
		{GranularityHour, "2026-03-05-07"},
		{GranularityDay, "2026-03-05"},
		{GranularityISOWeek, "2026-W10"},
		{GranularityMonth, "2026-03"},
	}

	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			if got := BucketKey(ts, tt.granularity); got != tt.want {
				t.Errorf("BucketKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildTrendEmptyInput(t *testing.T) {
	p := ResolveTrendPeriod("month", time.Now().UTC())
	got := BuildTrend(nil, p)
	if len(got) != 0 {
		t.Errorf("BuildTrend(nil) = %v, want empty", got)
	}
}

func TestBuildTrendSingleHourBucket(t *testing.T) {
	// Three expenses inside the same hour collapse into one point.
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)
	base := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
	txs := []models.Transaction{
		expense(10, base),
		expense(20, base.Add(10*time.Minute)),
		expense(30, base.Add(40*time.Minute)),
	}

	got := BuildTrend(txs, ResolveTrendPeriod("24h", now))
	want := []TrendPoint{{Period: "14:00", Income: 0, Expenses: 60, Net: -60}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildTrend() = %+v, want %+v", got, want)
	}
}

func TestBuildTrendChronologicalOrderAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		expense(3, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)),
		expense(1, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)),
		expense(2, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)),
	}

	got := BuildTrend(txs, ResolveTrendPeriod("6months", now))
	if len(got) != 3 {
		t.Fatalf("got %d points, want 3", len(got))
	}
	wantLabels := []string{"Nov 2025", "Dec 2025", "Jan 2026"}
	for i, want := range wantLabels {
		if got[i].Period != want {
			t.Errorf("point %d label = %q, want %q", i, got[i].Period, want)
		}
	}
}

func TestBuildTrendConservesTotals(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		income(100, now.Add(-2*time.Hour)),
		income(250.5, now.AddDate(0, 0, -3)),
		expense(40.25, now.AddDate(0, 0, -10)),
		expense(9.75, now.AddDate(0, 0, -20)),
		income(1, now.AddDate(0, 0, -25)),
	}

	for _, tag := range []string{"24h", "week", "month", "3months", "6months", "year"} {
		t.Run(tag, func(t *testing.T) {
			p := ResolveTrendPeriod(tag, now)
			var wantIncome, wantExpenses float64
			for _, tx := range txs {
				if tx.Date.Before(p.Start) {
					continue
				}
				if tx.Type == models.TransactionIncome {
					wantIncome += tx.Amount
				} else {
					wantExpenses += tx.Amount
				}
			}

			var inRange []models.Transaction
			for _, tx := range txs {
				if !tx.Date.Before(p.Start) {
					inRange = append(inRange, tx)
				}
			}

			points := BuildTrend(inRange, p)
			var gotIncome, gotExpenses float64
			for _, pt := range points {
				gotIncome += pt.Income
				gotExpenses += pt.Expenses
				if pt.Net != pt.Income-pt.Expenses {
					t.Errorf("net = %v, want %v", pt.Net, pt.Income-pt.Expenses)
				}
			}
			if gotIncome != wantIncome {
				t.Errorf("income sum = %v, want %v", gotIncome, wantIncome)
			}
			if gotExpenses != wantExpenses {
				t.Errorf("expenses sum = %v, want %v", gotExpenses, wantExpenses)
			}
		})
	}
}

func TestBuildTrendIdempotent(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		income(100, now.AddDate(0, 0, -1)),
		expense(30, now.AddDate(0, 0, -2)),
		expense(70, now.AddDate(0, 0, -2)),
	}
	p := ResolveTrendPeriod("week", now)

	first := BuildTrend(txs, p)
	second := BuildTrend(txs, p)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs: %+v vs %+v", first, second)
	}
}

func TestBuildTrendWeekdayLabels(t *testing.T) {
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		expense(5, time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)),  // Monday
		expense(7, time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC)), // Wednesday
	}

	got := BuildTrend(txs, ResolveTrendPeriod("week", now))
	if len(got) != 2 {
		t.Fatalf("got %d points, want 2", len(got))
	}
	if got[0].Period != "Mon 03/09" {
		t.Errorf("first label = %q, want %q", got[0].Period, "Mon 03/09")
	}
	if got[1].Period != "Wed 03/11" {
		t.Errorf("second label = %q, want %q", got[1].Period, "Wed 03/11")
	}
}
