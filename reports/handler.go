package reports

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"ofi/config"
	"ofi/database"

	"github.com/jmoiron/sqlx"
)

// DashboardHandler はダッシュボードの全データを1レスポンスで返します。
func DashboardHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := database.ListOrders(db, "")
		if err != nil {
			log.Printf("ERROR: Failed to list orders for dashboard: %v", err)
			http.Error(w, "Failed to list orders", http.StatusInternalServerError)
			return
		}

		cfg := config.GetConfig()
		standard := cfg.StandardDailyOutput
		if standard == 0 {
			standard = 120
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"metrics":       Completion(orders, time.Now()),
			"stageAverages": StageAverages(orders, standard),
			"monthly":       MonthlyRollup(orders),
		})
	}
}

// MonthlyHandler は月次の生産集計だけを返します。
func MonthlyHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := database.ListOrders(db, "")
		if err != nil {
			log.Printf("ERROR: Failed to list orders for monthly rollup: %v", err)
			http.Error(w, "Failed to list orders", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MonthlyRollup(orders))
	}
}
