package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/db"
	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllCategoriesForUser(ctx context.Context, pool *pgxpool.Pool, userID string) ([]models.Category, error) {
	if cached, ok := db.GetCategoryCache(userID); ok {
		return cached, nil
	}

	query := `
		SELECT id, user_id, name, type, color, icon, created_at
		FROM categories WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetCategoryCache(userID, categories)
	return categories, nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, userID, categoryID string) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, type, color, icon, created_at
		FROM categories WHERE id = $1 AND user_id = $2
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, categoryID, userID).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) (*models.Category, error) {
	category.ID = uuid.NewString()
	category.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO categories (id, user_id, name, type, color, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := pool.Exec(ctx, query,
		category.ID, category.UserID, category.Name, category.Type,
		category.Color, category.Icon, category.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	db.DelCategoryCache(category.UserID)
	return category, nil
}

// DeleteCategory removes a category together with its transactions and
// budgets, in one database transaction.
func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, userID, categoryID string) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, categoryID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("category not found")
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE category_id = $1 AND user_id = $2`, categoryID, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM budgets WHERE category_id = $1 AND user_id = $2`, categoryID, userID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	db.DelCategoryCache(userID)
	return nil
}

// defaultCategories are seeded for every new user.
var defaultCategories = []models.Category{
	{Name: "Salary", Type: models.CategoryIncome, Color: "#10B981", Icon: "💰"},
	{Name: "Freelance", Type: models.CategoryIncome, Color: "#059669", Icon: "💼"},
	{Name: "Investment Returns", Type: models.CategoryIncome, Color: "#047857", Icon: "📈"},
	{Name: "Bank Interest", Type: models.CategoryIncome, Color: "#065F46", Icon: "🏦"},
	{Name: "Cash Income", Type: models.CategoryIncome, Color: "#064E3B", Icon: "💵"},
	{Name: "Bonus", Type: models.CategoryIncome, Color: "#34D399", Icon: "🎁"},
	{Name: "Food & Dining", Type: models.CategoryExpense, Color: "#EF4444", Icon: "🍕"},
	{Name: "Transportation", Type: models.CategoryExpense, Color: "#F59E0B", Icon: "🚗"},
	{Name: "Shopping", Type: models.CategoryExpense, Color: "#8B5CF6", Icon: "🛒"},
	{Name: "Entertainment", Type: models.CategoryExpense, Color: "#EC4899", Icon: "🎬"},
	{Name: "Bills & Utilities", Type: models.CategoryExpense, Color: "#6B7280", Icon: "⚡"},
	{Name: "Healthcare", Type: models.CategoryExpense, Color: "#14B8A6", Icon: "🏥"},
	{Name: "Gas & Fuel", Type: models.CategoryExpense, Color: "#F97316", Icon: "⛽"},
	{Name: "Groceries", Type: models.CategoryExpense, Color: "#84CC16", Icon: "🛍️"},
	{Name: "Rent/Mortgage", Type: models.CategoryExpense, Color: "#DC2626", Icon: "🏠"},
	{Name: "Coffee & Drinks", Type: models.CategoryExpense, Color: "#A3A3A3", Icon: "☕"},
	{Name: "Technology", Type: models.CategoryExpense, Color: "#3B82F6", Icon: "💻"},
	{Name: "Cash Expenses", Type: models.CategoryExpense, Color: "#6366F1", Icon: "💳"},
}

// SeedDefaultCategories inserts the starter category set for a new user.
func SeedDefaultCategories(ctx context.Context, pool *pgxpool.Pool, userID string) error {
	batch := &pgx.Batch{}
	now := time.Now().UTC()
	query := `
		INSERT INTO categories (id, user_id, name, type, color, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, c := range defaultCategories {
		batch.Queue(query, uuid.NewString(), userID, c.Name, c.Type, c.Color, c.Icon, now)
	}

	results := pool.SendBatch(ctx, batch)
	defer results.Close()
	for range defaultCategories {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
	}
	return nil
}
