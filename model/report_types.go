package model

// MonthlyRow は納期月ごとの生産集計の1行です。
type MonthlyRow struct {
	Month     string `json:"month"` // YYYY-MM
	Quantity  int    `json:"quantity"`
	Cutting   int    `json:"cutting"`
	Sewing    int    `json:"sewing"`
	Finishing int    `json:"finishing"`
	Packaging int    `json:"packaging"`
}

// CompletionMetrics はダッシュボード先頭のメトリクスカード群です。
type CompletionMetrics struct {
	OverallCompletionPct float64 `json:"overallCompletionPct"`
	ActiveOrders         int     `json:"activeOrders"`
	OnTrack              int     `json:"onTrack"`
	AtRisk               int     `json:"atRisk"`
}

// StageAverage は工程別の平均実績と基準ラインの対です。
type StageAverage struct {
	Process  string  `json:"process"`
	Actual   float64 `json:"actual"`
	Standard float64 `json:"standard"`
}
