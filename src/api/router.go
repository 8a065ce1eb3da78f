package api

import (
	"net/http"

	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, isDemo bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Use(middleware.DemoModeMiddleware(isDemo))

	store := sqldb.NewStore(pool)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(pool))
		r.Post("/auth/login", handlers.Login(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			r.Get("/auth/me", handlers.Me(pool))

			// Categories
			r.Get("/categories", handlers.GetAllCategories(pool))
			r.Post("/categories", handlers.CreateCategory(pool))
			r.Delete("/categories/{category_id}", handlers.DeleteCategory(pool))

			// Transactions
			r.Get("/transactions", handlers.GetTransactions(pool))
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool))

			// Budgets
			r.Get("/budgets", handlers.GetAllBudgets(pool))
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Goals
			r.Get("/goals", handlers.GetAllGoals(pool))
			r.Post("/goals", handlers.CreateGoal(pool))
			r.Put("/goals/{goal_id}/progress", handlers.UpdateGoalProgress(pool))
			r.Delete("/goals/{goal_id}", handlers.DeleteGoal(pool))

			// Analytics
			r.Get("/analytics/dashboard", handlers.GetDashboardAnalytics(store))
			r.Get("/analytics/spending-trend", handlers.GetSpendingTrend(store))
		})
	})

	return r
}
