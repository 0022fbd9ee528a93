package orders

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"ofi/database"
	"ofi/model"
	"ofi/parsers"

	"github.com/jmoiron/sqlx"
)

// ImportOrdersHandler は受注一覧CSVのインポートを処理します。
// 1ファイルを1トランザクションで upsert し、既存行の工程カウンタは保持します。
func ImportOrdersHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "Failed to read CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "Failed to read CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}

		records, err := parsers.ParseOrderCSV(parsers.DecodeLegacy(data))
		if err != nil {
			http.Error(w, "Failed to parse CSV file: "+err.Error(), http.StatusBadRequest)
			return
		}
		if len(records) == 0 {
			http.Error(w, "No importable rows in CSV.", http.StatusBadRequest)
			return
		}

		tx, err := db.Beginx()
		if err != nil {
			http.Error(w, "Failed to start transaction: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer tx.Rollback()

		var imported int
		var rowErrors []string

		for _, rec := range records {
			err := database.UpsertOrderInTx(tx, model.Order{
				OrderNumber: rec.OrderNumber,
				Customer:    rec.Customer,
				Product:     rec.Product,
				DueDate:     rec.DueDate,
				Quantity:    rec.Quantity,
			})
			if err != nil {
				log.Printf("ERROR: Failed to upsert order %s: %v", rec.OrderNumber, err)
				rowErrors = append(rowErrors, fmt.Sprintf("order %s: %v", rec.OrderNumber, err))
				continue
			}
			imported++
		}

		if err := tx.Commit(); err != nil {
			http.Error(w, "Failed to commit transaction: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"imported": imported,
			"errors":   rowErrors,
		})
	}
}
