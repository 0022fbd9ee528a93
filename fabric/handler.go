package fabric

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"ofi/database"

	"github.com/jmoiron/sqlx"
)

// ListStandardsHandler は登録済みの基準用尺一覧をJSONで返します。
func ListStandardsHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standards, err := database.ListFabricStandards(db)
		if err != nil {
			log.Printf("ERROR: Failed to list fabric standards: %v", err)
			http.Error(w, "Failed to list fabric standards", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(standards)
	}
}

// ResolveHandler は受注の必要用尺を解決して返します。
// クエリ: orderNumber (必須), size, override (m/着)。
func ResolveHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orderNumber := q.Get("orderNumber")
		if orderNumber == "" {
			http.Error(w, "orderNumber is required", http.StatusBadRequest)
			return
		}

		override := 0.0
		if s := q.Get("override"); s != "" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil || v < 0 {
				http.Error(w, "override must be a non-negative number", http.StatusBadRequest)
				return
			}
			override = v
		}

		order, err := database.GetOrderByNumber(db, orderNumber)
		if err != nil {
			log.Printf("ERROR: Failed to get order %s: %v", orderNumber, err)
			http.Error(w, "Failed to get order", http.StatusInternalServerError)
			return
		}
		if order == nil {
			http.NotFound(w, r)
			return
		}

		itemType := ItemType(order.Product)
		total, perUnit, source, err := Required(db, itemType, q.Get("size"), order.Quantity, override)
		if err != nil {
			log.Printf("ERROR: Failed to resolve fabric requirement for %s: %v", orderNumber, err)
			http.Error(w, "Failed to resolve fabric requirement", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"orderNumber":    orderNumber,
			"itemType":       itemType,
			"units":          order.Quantity,
			"fabricPerUnit":  perUnit,
			"requiredFabric": total,
			"source":         source,
		})
	}
}
