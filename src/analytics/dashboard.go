package analytics

import (
	"context"
	"time"

	"fintrack-server/src/models"
)

// Store is the read interface the analytics core consumes. The caller owns
// the underlying connection; the core never holds one.
type Store interface {
	FindTransactions(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error)
	FindCategories(ctx context.Context, userID string) ([]models.Category, error)
	FindRecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}

// RecentLimit is the fixed size of the dashboard's recent-activity list.
const RecentLimit = 5

// RecentTransaction is a transaction enriched with its category's display
// name and icon. Both stay empty when the category has been deleted.
type RecentTransaction struct {
	models.Transaction
	CategoryName string `json:"category_name,omitempty"`
	CategoryIcon string `json:"category_icon,omitempty"`
}

// Dashboard is the composed summary returned for the dashboard view.
type Dashboard struct {
	TotalIncome        float64             `json:"total_income"`
	TotalExpenses      float64             `json:"total_expenses"`
	Balance            float64             `json:"balance"`
	CategorySpending   []CategorySpending  `json:"category_spending"`
	RecentTransactions []RecentTransaction `json:"recent_transactions"`
	Period             string              `json:"period"`
}

// BuildDashboard resolves the period (month anchored to the calendar month),
// totals the user's transactions in range, summarizes expenses by category
// and attaches the five most recent transactions regardless of period.
func BuildDashboard(ctx context.Context, store Store, userID, periodTag string, now time.Time) (*Dashboard, error) {
	start, label := ResolveDashboardPeriod(periodTag, now)

	txs, err := store.FindTransactions(ctx, userID, start, now)
	if err != nil {
		return nil, err
	}
	categories, err := store.FindCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totalIncome, totalExpenses float64
	for _, tx := range txs {
		if tx.Type == models.TransactionIncome {
			totalIncome += tx.Amount
		} else {
			totalExpenses += tx.Amount
		}
	}

	recent, err := store.FindRecentTransactions(ctx, userID, RecentLimit)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}
	recentOut := make([]RecentTransaction, 0, len(recent))
	for _, tx := range recent {
		rt := RecentTransaction{Transaction: tx}
		if cat, ok := byID[tx.CategoryID]; ok {
			rt.CategoryName = cat.Name
			rt.CategoryIcon = cat.Icon
		}
		recentOut = append(recentOut, rt)
	}

	return &Dashboard{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		Balance:            totalIncome - totalExpenses,
		CategorySpending:   SummarizeSpending(txs, categories),
		RecentTransactions: recentOut,
		Period:             label,
	}, nil
}
