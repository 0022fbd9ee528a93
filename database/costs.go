package database

import (
	"database/sql"
	"fmt"

	"ofi/model"

	"github.com/jmoiron/sqlx"
)

// InsertCostHistoryInTx は履歴テーブルに1行追記します。履歴は更新・削除されません。
func InsertCostHistoryInTx(tx *sqlx.Tx, rec model.CostRecord) error {
	const q = `
		INSERT INTO fabric_cost_history (
			order_number, item_type, units,
			fabric_issued, fabric_rate,
			accessories_rate, printing_rate, overhead_per_unit,
			labor_cutting_rate, labor_sewing_rate, labor_finishing_rate,
			dyeing_rate, embroidery_rate, shipping_cost, misc_cost,
			last_updated
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := tx.Exec(q,
		rec.OrderNumber, rec.ItemType, rec.Units,
		rec.FabricIssued, rec.FabricRate,
		rec.AccessoriesRate, rec.PrintingRate, rec.OverheadPerUnit,
		rec.LaborCuttingRate, rec.LaborSewingRate, rec.LaborFinishingRate,
		rec.DyeingRate, rec.EmbroideryRate, rec.ShippingCost, rec.MiscCost,
		rec.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("InsertCostHistoryInTx (OrderNumber: %s) failed: %w", rec.OrderNumber, err)
	}
	return nil
}

// UpsertCostRecordInTx は最新スナップショットを全フィールド置換で upsert します。
func UpsertCostRecordInTx(tx *sqlx.Tx, rec model.CostRecord) error {
	const q = `
		INSERT INTO fabric_cost_1 (
			order_number, item_type, units,
			fabric_issued, fabric_rate,
			accessories_rate, printing_rate, overhead_per_unit,
			labor_cutting_rate, labor_sewing_rate, labor_finishing_rate,
			dyeing_rate, embroidery_rate, shipping_cost, misc_cost,
			last_updated
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(order_number) DO UPDATE SET
			item_type = excluded.item_type,
			units = excluded.units,
			fabric_issued = excluded.fabric_issued,
			fabric_rate = excluded.fabric_rate,
			accessories_rate = excluded.accessories_rate,
			printing_rate = excluded.printing_rate,
			overhead_per_unit = excluded.overhead_per_unit,
			labor_cutting_rate = excluded.labor_cutting_rate,
			labor_sewing_rate = excluded.labor_sewing_rate,
			labor_finishing_rate = excluded.labor_finishing_rate,
			dyeing_rate = excluded.dyeing_rate,
			embroidery_rate = excluded.embroidery_rate,
			shipping_cost = excluded.shipping_cost,
			misc_cost = excluded.misc_cost,
			last_updated = excluded.last_updated
	`
	_, err := tx.Exec(q,
		rec.OrderNumber, rec.ItemType, rec.Units,
		rec.FabricIssued, rec.FabricRate,
		rec.AccessoriesRate, rec.PrintingRate, rec.OverheadPerUnit,
		rec.LaborCuttingRate, rec.LaborSewingRate, rec.LaborFinishingRate,
		rec.DyeingRate, rec.EmbroideryRate, rec.ShippingCost, rec.MiscCost,
		rec.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("UpsertCostRecordInTx (OrderNumber: %s) failed: %w", rec.OrderNumber, err)
	}
	return nil
}

// GetCostRecord は保存済みの最新コスト入力を返します。未保存なら nil です。
func GetCostRecord(db *sqlx.DB, orderNumber string) (*model.CostRecord, error) {
	var rec model.CostRecord
	err := db.Get(&rec, `SELECT * FROM fabric_cost_1 WHERE order_number = ?`, orderNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetCostRecord (OrderNumber: %s) failed: %w", orderNumber, err)
	}
	return &rec, nil
}

// GetCostHistory は履歴を新しい順に返します。
func GetCostHistory(db *sqlx.DB, orderNumber string) ([]model.CostHistoryEntry, error) {
	var entries []model.CostHistoryEntry
	const q = `
		SELECT * FROM fabric_cost_history
		WHERE order_number = ?
		ORDER BY last_updated DESC, id DESC
	`
	if err := db.Select(&entries, q, orderNumber); err != nil {
		return nil, fmt.Errorf("GetCostHistory (OrderNumber: %s) failed: %w", orderNumber, err)
	}
	return entries, nil
}

// CostExportRow はコストCSVエクスポートの1行です (orders と fabric_cost_1 の LEFT JOIN)。
type CostExportRow struct {
	OrderNumber        string  `db:"order_number"`
	Customer           string  `db:"customer"`
	Product            string  `db:"product"`
	Quantity           int     `db:"quantity"`
	ItemType           string  `db:"item_type"`
	Units              int     `db:"units"`
	FabricIssued       float64 `db:"fabric_issued"`
	FabricRate         float64 `db:"fabric_rate"`
	AccessoriesRate    float64 `db:"accessories_rate"`
	PrintingRate       float64 `db:"printing_rate"`
	OverheadPerUnit    float64 `db:"overhead_per_unit"`
	LaborCuttingRate   float64 `db:"labor_cutting_rate"`
	LaborSewingRate    float64 `db:"labor_sewing_rate"`
	LaborFinishingRate float64 `db:"labor_finishing_rate"`
	DyeingRate         float64 `db:"dyeing_rate"`
	EmbroideryRate     float64 `db:"embroidery_rate"`
	ShippingCost       float64 `db:"shipping_cost"`
	MiscCost           float64 `db:"misc_cost"`
	LastUpdated        string  `db:"last_updated"`
}

// GetCostExportRows はコスト未入力の受注も含む全受注のコストデータを返します。
func GetCostExportRows(db *sqlx.DB) ([]CostExportRow, error) {
	var rows []CostExportRow
	const q = `
		SELECT
			o.order_number,
			o.customer,
			o.product,
			o.quantity,
			COALESCE(f.item_type, '') AS item_type,
			COALESCE(f.units, 0) AS units,
			COALESCE(f.fabric_issued, 0.0) AS fabric_issued,
			COALESCE(f.fabric_rate, 0.0) AS fabric_rate,
			COALESCE(f.accessories_rate, 0.0) AS accessories_rate,
			COALESCE(f.printing_rate, 0.0) AS printing_rate,
			COALESCE(f.overhead_per_unit, 0.0) AS overhead_per_unit,
			COALESCE(f.labor_cutting_rate, 0.0) AS labor_cutting_rate,
			COALESCE(f.labor_sewing_rate, 0.0) AS labor_sewing_rate,
			COALESCE(f.labor_finishing_rate, 0.0) AS labor_finishing_rate,
			COALESCE(f.dyeing_rate, 0.0) AS dyeing_rate,
			COALESCE(f.embroidery_rate, 0.0) AS embroidery_rate,
			COALESCE(f.shipping_cost, 0.0) AS shipping_cost,
			COALESCE(f.misc_cost, 0.0) AS misc_cost,
			COALESCE(f.last_updated, '') AS last_updated
		FROM orders o
		LEFT JOIN fabric_cost_1 f ON f.order_number = o.order_number
		ORDER BY f.last_updated DESC
	`
	if err := db.Select(&rows, q); err != nil {
		return nil, fmt.Errorf("failed to get cost export rows: %w", err)
	}
	return rows, nil
}
