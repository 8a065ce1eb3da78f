package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/analytics"
)

// GetDashboardAnalytics serves the composed dashboard snapshot. The period
// tag defaults to "month" (calendar-anchored); unknown tags degrade to the
// default rather than erroring.
func GetDashboardAnalytics(store analytics.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		period := r.URL.Query().Get("period")
		if period == "" {
			period = "month"
		}

		dashboard, err := analytics.BuildDashboard(r.Context(), store, userID, period, time.Now().UTC())
		if err != nil {
			log.Printf("ERROR: Failed to build dashboard for user %s: %v", userID, err)
			http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dashboard)
	}
}

// GetSpendingTrend serves the bucketed income/expense series. The period tag
// defaults to "6months".
func GetSpendingTrend(store analytics.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(string)
		period := r.URL.Query().Get("period")
		if period == "" {
			period = "6months"
		}

		trend, err := analytics.SpendingTrend(r.Context(), store, userID, period, time.Now().UTC())
		if err != nil {
			log.Printf("ERROR: Failed to build spending trend for user %s: %v", userID, err)
			http.Error(w, "failed to build spending trend", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trend)
	}
}
