package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllBudgetsForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category_id, amount, period, start_date, end_date, created_at
		FROM budgets WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.StartDate, &b.EndDate, &b.CreatedAt)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	budget.ID = uuid.NewString()
	budget.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO budgets (id, user_id, category_id, amount, period, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := pool.Exec(ctx, query,
		budget.ID, budget.UserID, budget.CategoryID, budget.Amount,
		budget.Period, budget.StartDate, budget.EndDate, budget.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return budget, nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}
