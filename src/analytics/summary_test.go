package analytics

import (
	"reflect"
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestSummarizeSpending(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	categories := []models.Category{
		{ID: "cat-food", Name: "Food & Dining", Color: "#EF4444"},
		{ID: "cat-rent", Name: "Rent/Mortgage", Color: "#DC2626"},
		{ID: "cat-salary", Name: "Salary", Color: "#10B981"},
	}
	txs := []models.Transaction{
		{Type: models.TransactionExpense, CategoryID: "cat-rent", Amount: 900, Date: date},
		{Type: models.TransactionIncome, CategoryID: "cat-salary", Amount: 3000, Date: date},
		{Type: models.TransactionExpense, CategoryID: "cat-food", Amount: 25.5, Date: date},
		{Type: models.TransactionExpense, CategoryID: "cat-rent", Amount: 100, Date: date},
	}

	got := SummarizeSpending(txs, categories)

	// First-occurrence order: rent before food, income never appears.
	want := []CategorySpending{
		{Category: "Rent/Mortgage", Amount: 1000, Color: "#DC2626"},
		{Category: "Food & Dining", Amount: 25.5, Color: "#EF4444"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SummarizeSpending() = %+v, want %+v", got, want)
	}
}

func TestSummarizeSpendingDropsDeletedCategories(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	categories := []models.Category{
		{ID: "cat-food", Name: "Food & Dining", Color: "#EF4444"},
	}
	txs := []models.Transaction{
		{Type: models.TransactionExpense, CategoryID: "cat-deleted", Amount: 50, Date: date},
		{Type: models.TransactionExpense, CategoryID: "cat-food", Amount: 10, Date: date},
	}

	got := SummarizeSpending(txs, categories)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].Category != "Food & Dining" || got[0].Amount != 10 {
		t.Errorf("got %+v, want Food & Dining with 10", got[0])
	}
}

func TestSummarizeSpendingEmpty(t *testing.T) {
	if got := SummarizeSpending(nil, nil); len(got) != 0 {
		t.Errorf("SummarizeSpending(nil, nil) = %v, want empty", got)
	}
}
