package costing

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"ofi/database"
	"ofi/fabric"
	"ofi/model"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
)

// SavePayload はコストシート画面からの保存リクエストです。
// units と item_type は受注行から導出するため受け取りません。
type SavePayload struct {
	OrderNumber        string  `json:"orderNumber"`
	Size               string  `json:"size"`
	OverridePerUnit    float64 `json:"overridePerUnit"`
	FabricIssued       float64 `json:"fabricIssued"`
	FabricRate         float64 `json:"fabricRate"`
	AccessoriesRate    float64 `json:"accessoriesRate"`
	PrintingRate       float64 `json:"printingRate"`
	OverheadPerUnit    float64 `json:"overheadPerUnit"`
	LaborCuttingRate   float64 `json:"laborCuttingRate"`
	LaborSewingRate    float64 `json:"laborSewingRate"`
	LaborFinishingRate float64 `json:"laborFinishingRate"`
	DyeingRate         float64 `json:"dyeingRate"`
	EmbroideryRate     float64 `json:"embroideryRate"`
	ShippingCost       float64 `json:"shippingCost"`
	MiscCost           float64 `json:"miscCost"`
}

// SaveCostHandler はコスト入力を保存します。履歴追記と最新スナップショットの
// upsert は1つのトランザクションで行い、片方だけが残ることはありません。
func SaveCostHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload SavePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if payload.OrderNumber == "" {
			http.Error(w, "orderNumber is required", http.StatusBadRequest)
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

		itemType := fabric.ItemType(order.Product)
		units := order.Quantity

		required, _, source, err := fabric.Required(db, itemType, payload.Size, units, payload.OverridePerUnit)
		if err != nil {
			log.Printf("ERROR: Failed to resolve fabric requirement for %s: %v", payload.OrderNumber, err)
			http.Error(w, "Failed to resolve fabric requirement", http.StatusInternalServerError)
			return
		}

		breakdown := Compute(ComputeInput{
			Units:              units,
			FabricIssued:       payload.FabricIssued,
			FabricRate:         payload.FabricRate,
			AccessoriesRate:    payload.AccessoriesRate,
			PrintingRate:       payload.PrintingRate,
			OverheadPerUnit:    payload.OverheadPerUnit,
			LaborCuttingRate:   payload.LaborCuttingRate,
			LaborSewingRate:    payload.LaborSewingRate,
			LaborFinishingRate: payload.LaborFinishingRate,
			DyeingRate:         payload.DyeingRate,
			EmbroideryRate:     payload.EmbroideryRate,
			ShippingCost:       payload.ShippingCost,
			MiscCost:           payload.MiscCost,
		})

		warnings := Validate(payload.FabricIssued, required, payload.FabricRate)
		if source == fabric.SourceNone {
			warnings = append(warnings, model.Warning{
				Code:    "no_fabric_standard",
				Message: fmt.Sprintf("No standard fabric requirement defined for item type: %s", itemType),
			})
		}

		rec := model.CostRecord{
			OrderNumber:        payload.OrderNumber,
			ItemType:           itemType,
			Units:              units,
			FabricIssued:       payload.FabricIssued,
			FabricRate:         payload.FabricRate,
			AccessoriesRate:    payload.AccessoriesRate,
			PrintingRate:       payload.PrintingRate,
			OverheadPerUnit:    payload.OverheadPerUnit,
			LaborCuttingRate:   payload.LaborCuttingRate,
			LaborSewingRate:    payload.LaborSewingRate,
			LaborFinishingRate: payload.LaborFinishingRate,
			DyeingRate:         payload.DyeingRate,
			EmbroideryRate:     payload.EmbroideryRate,
			ShippingCost:       payload.ShippingCost,
			MiscCost:           payload.MiscCost,
			LastUpdated:        time.Now().Format(time.RFC3339),
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction", http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		if err := database.InsertCostHistoryInTx(tx, rec); err != nil {
			log.Printf("ERROR: Failed to append cost history: %v", err)
			writeSaveError(w, err)
			return
		}
		if err := database.UpsertCostRecordInTx(tx, rec); err != nil {
			log.Printf("ERROR: Failed to upsert cost record: %v", err)
			writeSaveError(w, err)
			return
		}
		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":        "Cost record saved.",
			"itemType":       itemType,
			"units":          units,
			"requiredFabric": required,
			"fabricSource":   source,
			"breakdown":      breakdown,
			"warnings":       warnings,
			"lastUpdated":    rec.LastUpdated,
		})
	}
}

// writeSaveError は制約違反を409、それ以外を500で返します。
func writeSaveError(w http.ResponseWriter, err error) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		http.Error(w, "Order number already exists or invalid data provided.", http.StatusConflict)
		return
	}
	http.Error(w, "Failed to save cost record.", http.StatusInternalServerError)
}

// LoadCostHandler は保存済みのコスト入力を返します。未保存なら exists=false と
// ゼロ値のレコードを返し、画面の初期値に使われます。
func LoadCostHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderNumber := r.URL.Query().Get("orderNumber")
		if orderNumber == "" {
			http.Error(w, "orderNumber is required", http.StatusBadRequest)
			return
		}

		rec, err := database.GetCostRecord(db, orderNumber)
		if err != nil {
			log.Printf("ERROR: Failed to load cost record for %s: %v", orderNumber, err)
			http.Error(w, "Failed to load cost record", http.StatusInternalServerError)
			return
		}

		exists := rec != nil
		if rec == nil {
			rec = &model.CostRecord{OrderNumber: orderNumber}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"exists": exists,
			"record": rec,
		})
	}
}

// CostHistoryHandler は受注のコスト履歴を新しい順に返します。
func CostHistoryHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderNumber := r.URL.Query().Get("orderNumber")
		if orderNumber == "" {
			http.Error(w, "orderNumber is required", http.StatusBadRequest)
			return
		}

		entries, err := database.GetCostHistory(db, orderNumber)
		if err != nil {
			log.Printf("ERROR: Failed to get cost history for %s: %v", orderNumber, err)
			http.Error(w, "Failed to get cost history", http.StatusInternalServerError)
			return
		}
		if entries == nil {
			entries = []model.CostHistoryEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entries)
	}
}
