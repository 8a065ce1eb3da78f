package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllBudgets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %s: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}
		if budgets == nil {
			budgets = []models.Budget{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			CategoryID string    `json:"category_id"`
			Amount     float64   `json:"amount"`
			Period     string    `json:"period"`
			StartDate  time.Time `json:"start_date"`
			EndDate    time.Time `json:"end_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.Amount) {
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}
		if req.Period == "" {
			req.Period = "monthly"
		}

		if _, err := db.GetCategoryByID(r.Context(), pool, userID, req.CategoryID); err != nil {
			log.Printf("ERROR: Category %s not found for user %s: %v", req.CategoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		budget := &models.Budget{
			UserID:     userID,
			CategoryID: req.CategoryID,
			Amount:     req.Amount,
			Period:     req.Period,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
		}
		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %s: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created budget %s for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		budgetID := chi.URLParam(r, "budget_id")

		if err := db.DeleteBudget(r.Context(), pool, userID, budgetID); err != nil {
			log.Printf("ERROR: Failed to delete budget %s for user %s: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted budget %s for user %s", budgetID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Budget deleted successfully"})
	}
}
