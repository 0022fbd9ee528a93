package orders

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"ofi/database"
	"ofi/model"

	"github.com/jmoiron/sqlx"
)

// CreatePayload は受注登録フォームからのリクエストです。
type CreatePayload struct {
	OrderNumber string `json:"orderNumber"`
	Customer    string `json:"customer"`
	Product     string `json:"product"`
	DueDate     string `json:"dueDate"` // YYYY-MM-DD
	Quantity    int    `json:"quantity"`
}

// OrderView は一覧応答用に導出ステータスを付けた受注です。
type OrderView struct {
	model.Order
	Status string `json:"status"`
}

// CreateOrderHandler は新規受注を登録します。受注番号の重複は409、
// 数量1未満と不正な納期は422で拒否します。
func CreateOrderHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload CreatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		payload.OrderNumber = strings.TrimSpace(payload.OrderNumber)
		if payload.OrderNumber == "" {
			http.Error(w, "orderNumber is required", http.StatusUnprocessableEntity)
			return
		}
		if payload.Quantity < 1 {
			http.Error(w, "quantity must be at least 1", http.StatusUnprocessableEntity)
			return
		}
		if _, err := time.Parse("2006-01-02", payload.DueDate); err != nil {
			http.Error(w, "dueDate must be YYYY-MM-DD", http.StatusUnprocessableEntity)
			return
		}

		err := database.CreateOrder(db, model.Order{
			OrderNumber: payload.OrderNumber,
			Customer:    payload.Customer,
			Product:     payload.Product,
			DueDate:     payload.DueDate,
			Quantity:    payload.Quantity,
		})
		if err != nil {
			if errors.Is(err, database.ErrDuplicateOrder) {
				http.Error(w, "Order number must be unique.", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create order %s: %v", payload.OrderNumber, err)
			http.Error(w, "Failed to create order", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Order added successfully."})
	}
}

// ListOrdersHandler は受注一覧を返します。クエリ: q (受注番号部分一致)、
// customer (得意先部分一致)、status (Open/Closed)。
func ListOrdersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orders, err := database.ListOrders(db, q.Get("q"))
		if err != nil {
			log.Printf("ERROR: Failed to list orders: %v", err)
			http.Error(w, "Failed to list orders", http.StatusInternalServerError)
			return
		}

		views := filterOrders(orders, model.OrderFilters{
			Customer: q.Get("customer"),
			Status:   q.Get("status"),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(views)
	}
}

// filterOrders は得意先とステータスの絞り込みをメモリ上で行います。
func filterOrders(orders []model.Order, filters model.OrderFilters) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		if filters.Customer != "" &&
			!strings.Contains(strings.ToLower(o.Customer), strings.ToLower(filters.Customer)) {
			continue
		}
		status := o.Status()
		if filters.Status != "" && filters.Status != status {
			continue
		}
		views = append(views, OrderView{Order: o, Status: status})
	}
	return views
}

// UpdateStagesHandler は4工程のカウンタを上書きします。
// 範囲外の値は422で拒否され、どの工程も更新されません。
func UpdateStagesHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload model.StageUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		err := database.UpdateOrderStages(db, payload)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.NotFound(w, r)
				return
			}
			if errors.Is(err, database.ErrStageOutOfRange) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Printf("ERROR: Failed to update stages for order ID %d: %v", payload.ID, err)
			http.Error(w, "Failed to update order", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Updated."})
	}
}
