package model

// CostRecord は fabric_cost_1 テーブルのレコード（最新のコスト入力スナップショット）です。
type CostRecord struct {
	OrderNumber        string  `db:"order_number" json:"orderNumber"`
	ItemType           string  `db:"item_type" json:"itemType"`
	Units              int     `db:"units" json:"units"`
	FabricIssued       float64 `db:"fabric_issued" json:"fabricIssued"`
	FabricRate         float64 `db:"fabric_rate" json:"fabricRate"`
	AccessoriesRate    float64 `db:"accessories_rate" json:"accessoriesRate"`
	PrintingRate       float64 `db:"printing_rate" json:"printingRate"`
	OverheadPerUnit    float64 `db:"overhead_per_unit" json:"overheadPerUnit"`
	LaborCuttingRate   float64 `db:"labor_cutting_rate" json:"laborCuttingRate"`
	LaborSewingRate    float64 `db:"labor_sewing_rate" json:"laborSewingRate"`
	LaborFinishingRate float64 `db:"labor_finishing_rate" json:"laborFinishingRate"`
	DyeingRate         float64 `db:"dyeing_rate" json:"dyeingRate"`
	EmbroideryRate     float64 `db:"embroidery_rate" json:"embroideryRate"`
	ShippingCost       float64 `db:"shipping_cost" json:"shippingCost"`
	MiscCost           float64 `db:"misc_cost" json:"miscCost"`
	LastUpdated        string  `db:"last_updated" json:"lastUpdated"`
}

// CostHistoryEntry は fabric_cost_history の1行です。追記専用。
type CostHistoryEntry struct {
	ID int `db:"id" json:"id"`
	CostRecord
}

// CostBreakdown は1受注分の導出済みコスト内訳です。
type CostBreakdown struct {
	FabricCost         float64 `json:"fabricCost"`
	AccessoriesCost    float64 `json:"accessoriesCost"`
	PrintingCost       float64 `json:"printingCost"`
	OverheadCost       float64 `json:"overheadCost"`
	LaborCuttingCost   float64 `json:"laborCuttingCost"`
	LaborSewingCost    float64 `json:"laborSewingCost"`
	LaborFinishingCost float64 `json:"laborFinishingCost"`
	DyeingCost         float64 `json:"dyeingCost"`
	EmbroideryCost     float64 `json:"embroideryCost"`
	ShippingCost       float64 `json:"shippingCost"`
	MiscCost           float64 `json:"miscCost"`
	TotalCost          float64 `json:"totalCost"`
	CostPerUnit        float64 `json:"costPerUnit"`
}

// Warning は保存をブロックしない助言メッセージです。
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
