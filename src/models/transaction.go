package models

import "time"

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

type Transaction struct {
	ID                 string          `json:"id"`
	UserID             string          `json:"user_id"`
	Amount             float64         `json:"amount"`
	Type               TransactionType `json:"type"`
	CategoryID         string          `json:"category_id"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurringFrequency *string         `json:"recurring_frequency"`
	CreatedAt          time.Time       `json:"created_at"`
}

// TransactionRequest is the payload for creating or replacing a transaction.
type TransactionRequest struct {
	Amount             float64         `json:"amount"`
	Type               TransactionType `json:"type"`
	CategoryID         string          `json:"category_id"`
	Description        string          `json:"description"`
	Date               time.Time       `json:"date"`
	IsRecurring        bool            `json:"is_recurring"`
	RecurringFrequency *string         `json:"recurring_frequency"`
}
