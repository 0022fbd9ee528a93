package orders

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"ofi/database"
	"ofi/model"

	"github.com/jmoiron/sqlx"
)

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportProductionCSVHandler は受注別の生産状況CSVをダウンロードさせます。
// 一覧と同じ q / customer / status フィルタを受け付けます。
func ExportProductionCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		orders, err := database.ListOrders(db, q.Get("q"))
		if err != nil {
			log.Printf("ERROR: Failed to list orders for export: %v", err)
			http.Error(w, "Failed to list orders for export: "+err.Error(), http.StatusInternalServerError)
			return
		}

		views := filterOrders(orders, model.OrderFilters{
			Customer: q.Get("customer"),
			Status:   q.Get("status"),
		})

		var buf bytes.Buffer
		buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

		header := []string{
			"order_number", "customer", "due_date", "quantity",
			"cutting", "sewing", "finishing", "packaging", "status",
		}
		buf.WriteString(strings.Join(header, ",") + "\r\n")

		for _, v := range views {
			record := []string{
				quoteAll(v.OrderNumber),
				quoteAll(v.Customer),
				quoteAll(v.DueDate),
				fmt.Sprintf("%d", v.Quantity),
				fmt.Sprintf("%d", v.Cutting),
				fmt.Sprintf("%d", v.Sewing),
				fmt.Sprintf("%d", v.Finishing),
				fmt.Sprintf("%d", v.Packaging),
				quoteAll(v.Status),
			}
			buf.WriteString(strings.Join(record, ",") + "\r\n")
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="orderwise_production_report.csv"`)
		w.Write(buf.Bytes())
	}
}
