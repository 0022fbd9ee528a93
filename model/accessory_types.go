package model

// AccessoryItem は accessories_details の1行です。追記専用で、
// Total は読み出し時に quantity × rate から導出されます (DBカラムなし)。
type AccessoryItem struct {
	ID            int     `db:"id" json:"id"`
	OrderNumber   string  `db:"order_number" json:"orderNumber"`
	AccessoryType string  `db:"accessory_type" json:"accessoryType"`
	Quantity      float64 `db:"quantity" json:"quantity"`
	Rate          float64 `db:"rate" json:"rate"`
	LastUpdated   string  `db:"last_updated" json:"lastUpdated"`

	Total float64 `db:"-" json:"total"`
}
