package analytics

import "fintrack-server/src/models"

// CategorySpending is one category's summed expenses with display metadata.
type CategorySpending struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

// SummarizeSpending sums expense amounts per category and joins the totals
// with category display metadata. Output order is the order in which each
// category first appears in the transaction list. Expenses whose category is
// no longer in the category set are dropped; their amounts still count toward
// the dashboard's total_expenses, so the two are not guaranteed to reconcile.
func SummarizeSpending(txs []models.Transaction, categories []models.Category) []CategorySpending {
	totals := make(map[string]float64)
	var order []string
	for _, tx := range txs {
		if tx.Type != models.TransactionExpense {
			continue
		}
		if _, seen := totals[tx.CategoryID]; !seen {
			order = append(order, tx.CategoryID)
		}
		totals[tx.CategoryID] += tx.Amount
	}

	byID := make(map[string]models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	out := make([]CategorySpending, 0, len(order))
	for _, id := range order {
		cat, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, CategorySpending{
			Category: cat.Name,
			Amount:   totals[id],
			Color:    cat.Color,
		})
	}
	return out
}
