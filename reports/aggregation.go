package reports

import (
	"sort"
	"time"

	"ofi/model"
)

const dueDateLayout = "2006-01-02"

// MonthlyRollup は納期の暦月ごとに数量と4工程カウンタを合算します。
// 納期が解釈できない受注は集計から除外されます。
func MonthlyRollup(orders []model.Order) []model.MonthlyRow {
	byMonth := make(map[string]*model.MonthlyRow)

	for _, o := range orders {
		due, err := time.Parse(dueDateLayout, o.DueDate)
		if err != nil {
			continue
		}
		month := due.Format("2006-01")

		row, ok := byMonth[month]
		if !ok {
			row = &model.MonthlyRow{Month: month}
			byMonth[month] = row
		}
		row.Quantity += o.Quantity
		row.Cutting += o.Cutting
		row.Sewing += o.Sewing
		row.Finishing += o.Finishing
		row.Packaging += o.Packaging
	}

	rows := make([]model.MonthlyRow, 0, len(byMonth))
	for _, row := range byMonth {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

// Completion はダッシュボードのメトリクスを導出します。today と同日が納期の
// 受注は on-track にも at-risk にも数えません。
func Completion(orders []model.Order, today time.Time) model.CompletionMetrics {
	m := model.CompletionMetrics{ActiveOrders: len(orders)}

	var totalQuantity, totalPackaging int
	todayDate := today.Format(dueDateLayout)

	for _, o := range orders {
		totalQuantity += o.Quantity
		totalPackaging += o.Packaging

		due, err := time.Parse(dueDateLayout, o.DueDate)
		if err != nil {
			continue
		}
		dueDate := due.Format(dueDateLayout)
		switch {
		case dueDate > todayDate:
			m.OnTrack++
		case dueDate < todayDate:
			m.AtRisk++
		}
	}

	if totalQuantity > 0 {
		m.OverallCompletionPct = float64(totalPackaging) / float64(totalQuantity) * 100
	}
	return m
}

// StageAverages は工程別の平均実績と基準ライン (standard) の対を返します。
func StageAverages(orders []model.Order, standard int) []model.StageAverage {
	averages := []model.StageAverage{
		{Process: "cutting"},
		{Process: "sewing"},
		{Process: "finishing"},
		{Process: "packaging"},
	}
	for i := range averages {
		averages[i].Standard = float64(standard)
	}
	if len(orders) == 0 {
		return averages
	}

	var sums [4]int
	for _, o := range orders {
		sums[0] += o.Cutting
		sums[1] += o.Sewing
		sums[2] += o.Finishing
		sums[3] += o.Packaging
	}
	n := float64(len(orders))
	for i := range averages {
		averages[i].Actual = float64(sums[i]) / n
	}
	return averages
}
