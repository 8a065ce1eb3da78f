package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetAllCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		categories, err := db.GetAllCategoriesForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func CreateCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req struct {
			Name  string              `json:"name"`
			Type  models.CategoryType `json:"type"`
			Color string              `json:"color"`
			Icon  string              `json:"icon"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create category request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Type != models.CategoryIncome && req.Type != models.CategoryExpense {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}
		if req.Color == "" {
			req.Color = "#3B82F6"
		}
		if req.Icon == "" {
			req.Icon = "💰"
		}

		category := &models.Category{
			UserID: userID,
			Name:   req.Name,
			Type:   req.Type,
			Color:  req.Color,
			Icon:   req.Icon,
		}
		created, err := db.CreateCategory(r.Context(), pool, category)
		if err != nil {
			log.Printf("ERROR: Failed to create category for user %s: %v", userID, err)
			http.Error(w, "failed to create category", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created category %s for user %s, name %s", created.ID, userID, created.Name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func DeleteCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		categoryID := chi.URLParam(r, "category_id")

		if err := db.DeleteCategory(r.Context(), pool, userID, categoryID); err != nil {
			log.Printf("ERROR: Failed to delete category %s for user %s: %v", categoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted category %s for user %s", categoryID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Category deleted successfully"})
	}
}
