package database

import (
	"database/sql"
	"fmt"

	"ofi/model"

	"github.com/jmoiron/sqlx"
)

// GetFabricStandard は (product_type, size) の基準用尺を返します。
// 行が無い場合は found=false を返し、エラーにはしません。
func GetFabricStandard(db *sqlx.DB, productType, size string) (perUnit float64, found bool, err error) {
	const q = `
		SELECT fabric_per_unit FROM fabric_standards
		WHERE product_type = ? AND size = ?
		LIMIT 1
	`
	err = db.Get(&perUnit, q, productType, size)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("GetFabricStandard (%s/%s) failed: %w", productType, size, err)
	}
	return perUnit, true, nil
}

func ListFabricStandards(db *sqlx.DB) ([]model.FabricStandard, error) {
	var standards []model.FabricStandard
	const q = `SELECT * FROM fabric_standards ORDER BY product_type, size, style`
	if err := db.Select(&standards, q); err != nil {
		return nil, fmt.Errorf("failed to list fabric standards: %w", err)
	}
	return standards, nil
}
