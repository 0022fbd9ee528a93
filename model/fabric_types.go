package model

// FabricStandard は fabric_standards テーブルのレコードです。
// (product_type, size, style) ごとの基準用尺 (m/着)。
type FabricStandard struct {
	ID            int     `db:"id" json:"id"`
	ProductType   string  `db:"product_type" json:"productType"`
	Size          string  `db:"size" json:"size"`
	Style         string  `db:"style" json:"style"`
	FabricPerUnit float64 `db:"fabric_per_unit" json:"fabricPerUnit"`
}
