package db

import (
	"context"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store adapts the pool to the read interface the analytics core consumes.
// The pool's lifecycle stays with the caller; the core only borrows it per
// request.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) FindTransactions(ctx context.Context, userID string, start, end time.Time) ([]models.Transaction, error) {
	return GetTransactionsInRange(ctx, s.pool, userID, start, end)
}

func (s *Store) FindCategories(ctx context.Context, userID string) ([]models.Category, error) {
	return GetAllCategoriesForUser(ctx, s.pool, userID)
}

func (s *Store) FindRecentTransactions(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	return GetRecentTransactions(ctx, s.pool, userID, limit)
}
