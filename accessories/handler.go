package accessories

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"ofi/database"
	"ofi/model"

	"github.com/jmoiron/sqlx"
)

// AddPayload は付属品明細フォームからのリクエストです。
type AddPayload struct {
	OrderNumber   string  `json:"orderNumber"`
	AccessoryType string  `json:"accessoryType"`
	Quantity      float64 `json:"quantity"`
	Rate          float64 `json:"rate"`
}

// ListResponse は明細一覧の応答です。source は合計がどこから来たかを示します。
// 台帳とコストシートの accessories_rate は別系統の数字で、統合しません。
type ListResponse struct {
	OrderNumber string                `json:"orderNumber"`
	Items       []model.AccessoryItem `json:"items"`
	TotalCost   float64               `json:"totalCost"`
	Source      string                `json:"source"` // "ledger" or "estimate"

	// コストシート側の units × accessories_rate。台帳合計と食い違うことが
	// あり、両方をそのまま返して画面側で注記させます。
	CostSheetAccessoriesCost float64 `json:"costSheetAccessoriesCost"`
}

// AddAccessoryHandler は付属品明細を追記します。更新・削除の経路はありません。
func AddAccessoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload AddPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		payload.AccessoryType = strings.TrimSpace(payload.AccessoryType)
		if payload.AccessoryType == "" {
			http.Error(w, "accessoryType is required", http.StatusUnprocessableEntity)
			return
		}
		if payload.Quantity < 0 || payload.Rate < 0 {
			http.Error(w, "quantity and rate must be non-negative", http.StatusUnprocessableEntity)
			return
		}

		order, err := database.GetOrderByNumber(db, payload.OrderNumber)
		if err != nil {
			log.Printf("ERROR: Failed to get order %s: %v", payload.OrderNumber, err)
			http.Error(w, "Failed to get order", http.StatusInternalServerError)
			return
		}
		if order == nil {
			http.Error(w, fmt.Sprintf("Order %s not found", payload.OrderNumber), http.StatusNotFound)
			return
		}

		err = database.AddAccessory(db, model.AccessoryItem{
			OrderNumber:   payload.OrderNumber,
			AccessoryType: payload.AccessoryType,
			Quantity:      payload.Quantity,
			Rate:          payload.Rate,
			LastUpdated:   time.Now().Format(time.RFC3339),
		})
		if err != nil {
			log.Printf("ERROR: Failed to add accessory: %v", err)
			http.Error(w, "Failed to add accessory", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Accessory added."})
	}
}

// ListAccessoriesHandler は明細一覧と合計を返します。明細が1件も無いときは
// コストレコードの units × accessories_rate を見積りとして合計に使います。
func ListAccessoriesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderNumber := r.URL.Query().Get("orderNumber")
		if orderNumber == "" {
			http.Error(w, "orderNumber is required", http.StatusBadRequest)
			return
		}

		items, err := database.GetAccessories(db, orderNumber)
		if err != nil {
			log.Printf("ERROR: Failed to get accessories for %s: %v", orderNumber, err)
			http.Error(w, "Failed to get accessories", http.StatusInternalServerError)
			return
		}

		rec, err := database.GetCostRecord(db, orderNumber)
		if err != nil {
			log.Printf("ERROR: Failed to get cost record for %s: %v", orderNumber, err)
			http.Error(w, "Failed to get cost record", http.StatusInternalServerError)
			return
		}

		var costSheetCost float64
		if rec != nil {
			costSheetCost = float64(rec.Units) * rec.AccessoriesRate
		}

		resp := ListResponse{
			OrderNumber:              orderNumber,
			Items:                    make([]model.AccessoryItem, 0, len(items)),
			CostSheetAccessoriesCost: costSheetCost,
		}

		for _, item := range items {
			item.Total = item.Quantity * item.Rate
			resp.TotalCost += item.Total
			resp.Items = append(resp.Items, item)
		}

		if len(items) > 0 {
			resp.Source = "ledger"
		} else {
			resp.Source = "estimate"
			resp.TotalCost = costSheetCost
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
