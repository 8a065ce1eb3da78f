package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, user_id, amount, type, category_id, description, date, is_recurring, recurring_frequency, created_at`

func scanTransaction(row interface{ Scan(dest ...any) error }) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.Amount, &t.Type, &t.CategoryID,
		&t.Description, &t.Date, &t.IsRecurring, &t.RecurringFrequency, &t.CreatedAt,
	)
	return t, err
}

// TransactionFilter narrows the transaction listing. Zero values mean "no
// constraint" except Limit, which the handler defaults to 100.
type TransactionFilter struct {
	CategoryID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Limit      int
	Skip       int
}

func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID string, filter TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if !filter.StartDate.IsZero() {
		args = append(args, filter.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !filter.EndDate.IsZero() {
		args = append(args, filter.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	query += " ORDER BY date DESC"
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionsInRange returns a user's transactions with date in
// [start, end], unordered. Feeds the analytics aggregation.
func GetTransactionsInRange(ctx context.Context, pool *pgxpool.Pool, userID string, start, end time.Time) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND date >= $2 AND date <= $3
	`
	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetRecentTransactions returns the newest transactions by date, ignoring any
// period filter.
func GetRecentTransactions(ctx context.Context, pool *pgxpool.Pool, userID string, limit int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`
	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, userID string, req models.TransactionRequest) (*models.Transaction, error) {
	t := models.Transaction{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Amount:             req.Amount,
		Type:               req.Type,
		CategoryID:         req.CategoryID,
		Description:        req.Description,
		Date:               req.Date,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		CreatedAt:          time.Now().UTC(),
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := pool.Exec(ctx, query,
		t.ID, t.UserID, t.Amount, t.Type, t.CategoryID,
		t.Description, t.Date, t.IsRecurring, t.RecurringFrequency, t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID string, req models.TransactionRequest) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = $1, type = $2, category_id = $3, description = $4,
			date = $5, is_recurring = $6, recurring_frequency = $7
		WHERE id = $8 AND user_id = $9
		RETURNING ` + transactionColumns + `
	`
	t, err := scanTransaction(pool.QueryRow(ctx, query,
		req.Amount, req.Type, req.CategoryID, req.Description,
		req.Date, req.IsRecurring, req.RecurringFrequency,
		transactionID, userID,
	))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found")
	}
	return nil
}
