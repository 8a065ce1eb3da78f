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

const defaultTransactionLimit = 100

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		filter := db.TransactionFilter{
			CategoryID: r.URL.Query().Get("category_id"),
			Type:       r.URL.Query().Get("type"),
			Limit:      defaultTransactionLimit,
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil || limit < 1 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			filter.Limit = limit
		}
		if v := r.URL.Query().Get("skip"); v != "" {
			skip, err := strconv.Atoi(v)
			if err != nil || skip < 0 {
				http.Error(w, "invalid skip", http.StatusBadRequest)
				return
			}
			filter.Skip = skip
		}
		if v := r.URL.Query().Get("start_date"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "invalid start_date", http.StatusBadRequest)
				return
			}
			filter.StartDate = t
		}
		if v := r.URL.Query().Get("end_date"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "invalid end_date", http.StatusBadRequest)
				return
			}
			filter.EndDate = t
		}

		transactions, err := db.GetTransactions(r.Context(), pool, userID, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %s: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)

		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.Amount) {
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}
		if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}

		// Category must belong to the caller
		if _, err := db.GetCategoryByID(r.Context(), pool, userID, req.CategoryID); err != nil {
			log.Printf("ERROR: Category %s not found for user %s: %v", req.CategoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		created, err := db.CreateTransaction(r.Context(), pool, userID, req)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %s: %v", userID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created transaction %s for user %s", created.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		transactionID := chi.URLParam(r, "transaction_id")

		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.Amount) {
			http.Error(w, "amount must be non-negative", http.StatusBadRequest)
			return
		}
		if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}

		if _, err := db.GetCategoryByID(r.Context(), pool, userID, req.CategoryID); err != nil {
			log.Printf("ERROR: Category %s not found for user %s: %v", req.CategoryID, userID, err)
			http.Error(w, "category not found", http.StatusNotFound)
			return
		}

		updated, err := db.UpdateTransaction(r.Context(), pool, userID, transactionID, req)
		if err != nil {
			log.Printf("ERROR: Failed to update transaction %s for user %s: %v", transactionID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Updated transaction %s for user %s", transactionID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		transactionID := chi.URLParam(r, "transaction_id")

		if err := db.DeleteTransaction(r.Context(), pool, userID, transactionID); err != nil {
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", transactionID, userID, err)
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted transaction %s for user %s", transactionID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Transaction deleted successfully"})
	}
}
