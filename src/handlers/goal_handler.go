package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllGoals(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		goals, err := db.GetAllGoalsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get goals for user %s: %v", userID, err)
			http.Error(w, "failed to get goals", http.StatusInternalServerError)
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(goals)
	}
}

func CreateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Title        string    `json:"title"`
			TargetAmount float64   `json:"target_amount"`
			TargetDate   time.Time `json:"target_date"`
			Description  string    `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create goal request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.TargetAmount) {
			http.Error(w, "target_amount must be non-negative", http.StatusBadRequest)
			return
		}

		goal := &models.Goal{
			UserID:       userID,
			Title:        req.Title,
			TargetAmount: req.TargetAmount,
			TargetDate:   req.TargetDate,
			Description:  req.Description,
		}
		created, err := db.CreateGoal(r.Context(), pool, goal)
		if err != nil {
			log.Printf("ERROR: Failed to create goal for user %s: %v", userID, err)
			http.Error(w, "failed to create goal", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created goal %s for user %s, title %s", created.ID, userID, created.Title)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateGoalProgress(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")

		amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
		if err != nil || !util.ValidateAmount(amount) {
			http.Error(w, "invalid amount", http.StatusBadRequest)
			return
		}

		if err := db.UpdateGoalProgress(r.Context(), pool, userID, goalID, amount); err != nil {
			log.Printf("ERROR: Failed to update goal %s progress for user %s: %v", goalID, userID, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated goal %s progress for user %s", goalID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Goal progress updated"})
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		goalID := chi.URLParam(r, "goal_id")

		if err := db.DeleteGoal(r.Context(), pool, userID, goalID); err != nil {
			log.Printf("ERROR: Failed to delete goal %s for user %s: %v", goalID, userID, err)
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted goal %s for user %s", goalID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Goal deleted successfully"})
	}
}
