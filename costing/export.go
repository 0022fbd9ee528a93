package costing

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strings"

	"ofi/database"

	"github.com/jmoiron/sqlx"
)

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportCostCSVHandler は全受注のコストデータをCSVでダウンロードさせます。
// コスト未保存の受注はゼロ値で含まれます。
func ExportCostCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := database.GetCostExportRows(db)
		if err != nil {
			log.Printf("ERROR: Failed to get cost data for export: %v", err)
			http.Error(w, "Failed to get cost data for export: "+err.Error(), http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

		header := []string{
			"Order Number", "Customer", "Product", "Quantity", "Item Type", "Units",
			"Fabric Issued", "Fabric Rate", "Accessories Rate",
			"Printing Rate", "Overhead per Unit",
			"Labor Cutting Rate", "Labor Sewing Rate", "Labor Finishing Rate",
			"Dyeing Rate", "Embroidery Rate", "Shipping Cost", "Miscellaneous Cost",
			"Last Updated",
		}
		buf.WriteString(strings.Join(header, ",") + "\r\n")

		for _, row := range rows {
			record := []string{
				quoteAll(row.OrderNumber),
				quoteAll(row.Customer),
				quoteAll(row.Product),
				fmt.Sprintf("%d", row.Quantity),
				quoteAll(row.ItemType),
				fmt.Sprintf("%d", row.Units),
				fmt.Sprintf("%.2f", row.FabricIssued),
				fmt.Sprintf("%.2f", row.FabricRate),
				fmt.Sprintf("%.2f", row.AccessoriesRate),
				fmt.Sprintf("%.2f", row.PrintingRate),
				fmt.Sprintf("%.2f", row.OverheadPerUnit),
				fmt.Sprintf("%.2f", row.LaborCuttingRate),
				fmt.Sprintf("%.2f", row.LaborSewingRate),
				fmt.Sprintf("%.2f", row.LaborFinishingRate),
				fmt.Sprintf("%.2f", row.DyeingRate),
				fmt.Sprintf("%.2f", row.EmbroideryRate),
				fmt.Sprintf("%.2f", row.ShippingCost),
				fmt.Sprintf("%.2f", row.MiscCost),
				quoteAll(row.LastUpdated),
			}
			buf.WriteString(strings.Join(record, ",") + "\r\n")
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="order_cost_data.csv"`)
		w.Write(buf.Bytes())
	}
}
