package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

type stubStore struct {
	txs        []models.Transaction
	categories []models.Category
}

func (s *stubStore) FindTransactions(_ context.Context, _ string, start, end time.Time) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range s.txs {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *stubStore) FindCategories(_ context.Context, _ string) ([]models.Category, error) {
	return s.categories, nil
}

func (s *stubStore) FindRecentTransactions(_ context.Context, _ string, limit int) ([]models.Transaction, error) {
	if len(s.txs) > limit {
		return s.txs[:limit], nil
	}
	return s.txs, nil
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), "user_id", "user-1"))
}

func TestGetDashboardAnalytics(t *testing.T) {
	store := &stubStore{
		categories: []models.Category{
			{ID: "cat-1", Name: "Groceries", Icon: "🛍️", Color: "#84CC16"},
		},
		txs: []models.Transaction{
			{ID: "t1", Type: models.TransactionExpense, CategoryID: "cat-1", Amount: 45, Date: time.Now().UTC().Add(-time.Hour)},
			{ID: "t2", Type: models.TransactionIncome, CategoryID: "cat-1", Amount: 100, Date: time.Now().UTC().Add(-2 * time.Hour)},
		},
	}

	rec := httptest.NewRecorder()
	GetDashboardAnalytics(store)(rec, authedRequest(http.MethodGet, "/api/analytics/dashboard?period=24h"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var d analytics.Dashboard
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if d.TotalIncome != 100 || d.TotalExpenses != 45 || d.Balance != 55 {
		t.Errorf("totals = %v/%v/%v, want 100/45/55", d.TotalIncome, d.TotalExpenses, d.Balance)
	}
	if d.Period != "Last 24 Hours" {
		t.Errorf("period = %q, want %q", d.Period, "Last 24 Hours")
	}
	if len(d.RecentTransactions) != 2 || d.RecentTransactions[0].CategoryName != "Groceries" {
		t.Errorf("recent = %+v, want 2 enriched transactions", d.RecentTransactions)
	}
}

func TestGetSpendingTrend(t *testing.T) {
	now := time.Now().UTC()
	store := &stubStore{
		txs: []models.Transaction{
			{Type: models.TransactionExpense, Amount: 30, Date: now.Add(-time.Hour)},
			{Type: models.TransactionExpense, Amount: 20, Date: now.Add(-90 * 24 * time.Hour)},
		},
	}

	rec := httptest.NewRecorder()
	GetSpendingTrend(store)(rec, authedRequest(http.MethodGet, "/api/analytics/spending-trend?period=6months"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var points []analytics.TrendPoint
	if err := json.NewDecoder(rec.Body).Decode(&points); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var total float64
	for _, p := range points {
		total += p.Expenses
	}
	if total != 50 {
		t.Errorf("summed expenses = %v, want 50", total)
	}
}

func TestGetSpendingTrendEmptyIsJSONArray(t *testing.T) {
	rec := httptest.NewRecorder()
	GetSpendingTrend(&stubStore{})(rec, authedRequest(http.MethodGet, "/api/analytics/spending-trend"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}
