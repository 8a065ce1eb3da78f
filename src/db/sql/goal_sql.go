package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllGoalsForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, title, target_amount, current_amount, target_date, description, created_at
		FROM goals WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		err := rows.Scan(&g.ID, &g.UserID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate, &g.Description, &g.CreatedAt)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func CreateGoal(ctx context.Context, pool *pgxpool.Pool, goal *models.Goal) (*models.Goal, error) {
	goal.ID = uuid.NewString()
	goal.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO goals (id, user_id, title, target_amount, current_amount, target_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := pool.Exec(ctx, query,
		goal.ID, goal.UserID, goal.Title, goal.TargetAmount,
		goal.CurrentAmount, goal.TargetDate, goal.Description, goal.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func UpdateGoalProgress(ctx context.Context, pool *pgxpool.Pool, userID, goalID string, amount float64) error {
	cmd, err := pool.Exec(ctx,
		`UPDATE goals SET current_amount = $1 WHERE id = $2 AND user_id = $3`,
		amount, goalID, userID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("goal not found")
	}
	return nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("goal not found")
	}
	return nil
}
