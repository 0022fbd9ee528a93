package costing

import (
	"fmt"

	"ofi/model"
)

// 助言警告のしきい値。保存をブロックしない (原本仕様)。
const (
	deviationLow  = 0.8
	deviationHigh = 1.2
	rateMin       = 1.0
	rateMax       = 50.0
)

// ComputeInput はコスト計算への入力一式です。
type ComputeInput struct {
	Units              int     `json:"units"`
	FabricIssued       float64 `json:"fabricIssued"`
	FabricRate         float64 `json:"fabricRate"`
	AccessoriesRate    float64 `json:"accessoriesRate"`
	PrintingRate       float64 `json:"printingRate"`
	OverheadPerUnit    float64 `json:"overheadPerUnit"`
	LaborCuttingRate   float64 `json:"laborCuttingRate"`
	LaborSewingRate    float64 `json:"laborSewingRate"`
	LaborFinishingRate float64 `json:"laborFinishingRate"`
	DyeingRate         float64 `json:"dyeingRate"`
	EmbroideryRate     float64 `json:"embroideryRate"`
	ShippingCost       float64 `json:"shippingCost"`
	MiscCost           float64 `json:"miscCost"`
}

// Compute は受注1件のコスト内訳を導出します。状態を持たない純関数です。
// 丸めは表示側の責務で、ここでは行いません。
func Compute(in ComputeInput) model.CostBreakdown {
	units := float64(in.Units)

	b := model.CostBreakdown{
		FabricCost:         in.FabricIssued * in.FabricRate,
		AccessoriesCost:    units * in.AccessoriesRate,
		PrintingCost:       units * in.PrintingRate,
		OverheadCost:       units * in.OverheadPerUnit,
		LaborCuttingCost:   units * in.LaborCuttingRate,
		LaborSewingCost:    units * in.LaborSewingRate,
		LaborFinishingCost: units * in.LaborFinishingRate,
		DyeingCost:         units * in.DyeingRate,
		EmbroideryCost:     units * in.EmbroideryRate,
		ShippingCost:       in.ShippingCost,
		MiscCost:           in.MiscCost,
	}

	b.TotalCost = b.FabricCost + b.AccessoriesCost + b.PrintingCost + b.OverheadCost +
		b.LaborCuttingCost + b.LaborSewingCost + b.LaborFinishingCost +
		b.DyeingCost + b.EmbroideryCost + b.ShippingCost + b.MiscCost

	if in.Units != 0 {
		b.CostPerUnit = b.TotalCost / units
	}

	return b
}

// Validate は用尺と単価の助言警告を返します。警告があっても保存は行われます。
func Validate(fabricIssued, fabricRequired, fabricRate float64) []model.Warning {
	var warnings []model.Warning

	if fabricIssued < fabricRequired*deviationLow || fabricIssued > fabricRequired*deviationHigh {
		warnings = append(warnings, model.Warning{
			Code: "fabric_deviation",
			Message: fmt.Sprintf("Fabric issued (%.2f meters) deviates significantly from required (%.2f meters).",
				fabricIssued, fabricRequired),
		})
	}

	if fabricRate < rateMin || fabricRate > rateMax {
		warnings = append(warnings, model.Warning{
			Code:    "unusual_fabric_rate",
			Message: fmt.Sprintf("Fabric rate seems unusual. Typical range is $%.0f-$%.0f per meter.", rateMin, rateMax),
		})
	}

	return warnings
}
