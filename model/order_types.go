package model

// Order は orders テーブルのレコード（工程別カウンタ付きの受注1件）です。
type Order struct {
	ID          int    `db:"id" json:"id"`
	OrderNumber string `db:"order_number" json:"orderNumber"`
	Customer    string `db:"customer" json:"customer"`
	Product     string `db:"product" json:"product"`
	DueDate     string `db:"due_date" json:"dueDate"` // YYYY-MM-DD
	Quantity    int    `db:"quantity" json:"quantity"`
	Cutting     int    `db:"cutting" json:"cutting"`
	Sewing      int    `db:"sewing" json:"sewing"`
	Finishing   int    `db:"finishing" json:"finishing"`
	Packaging   int    `db:"packaging" json:"packaging"`
}

// Status は梱包カウンタから受注の状態を導出します。永続化はしません。
func (o Order) Status() string {
	if o.Packaging >= o.Quantity {
		return "Closed"
	}
	return "Open"
}

// StageUpdate はフロントエンドから受け取る工程カウンタ更新です。
type StageUpdate struct {
	ID        int `json:"id"`
	Cutting   int `json:"cutting"`
	Sewing    int `json:"sewing"`
	Finishing int `json:"finishing"`
	Packaging int `json:"packaging"`
}

// OrderFilters は受注一覧の絞り込み条件です。空のフィールドは全件に一致します。
type OrderFilters struct {
	OrderNumber string
	Customer    string
	Status      string // "", "Open" or "Closed"
}
