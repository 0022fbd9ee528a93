package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBreakdown(t *testing.T) {
	b := Compute(ComputeInput{
		Units:              10,
		FabricIssued:       15,
		FabricRate:         5,
		AccessoriesRate:    2,
		PrintingRate:       1,
		OverheadPerUnit:    3,
		LaborCuttingRate:   4,
		LaborSewingRate:    4,
		LaborFinishingRate: 4,
		ShippingCost:       50,
		MiscCost:           10,
	})

	assert.Equal(t, 75.0, b.FabricCost)
	assert.Equal(t, 20.0, b.AccessoriesCost)
	assert.Equal(t, 10.0, b.PrintingCost)
	assert.Equal(t, 30.0, b.OverheadCost)
	assert.Equal(t, 40.0, b.LaborCuttingCost)
	assert.Equal(t, 40.0, b.LaborSewingCost)
	assert.Equal(t, 40.0, b.LaborFinishingCost)
	assert.Equal(t, 0.0, b.DyeingCost)
	assert.Equal(t, 0.0, b.EmbroideryCost)
	assert.Equal(t, 335.0, b.TotalCost)
	assert.Equal(t, 33.5, b.CostPerUnit)
}

func TestComputeTotalIsSumOfComponents(t *testing.T) {
	b := Compute(ComputeInput{
		Units:              7,
		FabricIssued:       11.5,
		FabricRate:         3.25,
		AccessoriesRate:    1.1,
		PrintingRate:       0.4,
		OverheadPerUnit:    2.75,
		LaborCuttingRate:   1.9,
		LaborSewingRate:    2.2,
		LaborFinishingRate: 1.3,
		DyeingRate:         0.6,
		EmbroideryRate:     0.8,
		ShippingCost:       12.5,
		MiscCost:           4.75,
	})

	sum := b.FabricCost + b.AccessoriesCost + b.PrintingCost + b.OverheadCost +
		b.LaborCuttingCost + b.LaborSewingCost + b.LaborFinishingCost +
		b.DyeingCost + b.EmbroideryCost + b.ShippingCost + b.MiscCost
	assert.Equal(t, sum, b.TotalCost)
	assert.Equal(t, b.TotalCost/7, b.CostPerUnit)
}

func TestComputeZeroUnits(t *testing.T) {
	b := Compute(ComputeInput{
		Units:        0,
		FabricIssued: 20,
		FabricRate:   5,
		ShippingCost: 30,
	})

	assert.Equal(t, 100.0, b.FabricCost)
	assert.Equal(t, 130.0, b.TotalCost)
	assert.Equal(t, 0.0, b.CostPerUnit)
}

func TestValidateWithinRange(t *testing.T) {
	warnings := Validate(15, 15, 5)
	assert.Empty(t, warnings)
}

func TestValidateFabricDeviation(t *testing.T) {
	warnings := Validate(10, 15, 5)
	require.Len(t, warnings, 1)
	assert.Equal(t, "fabric_deviation", warnings[0].Code)

	warnings = Validate(19, 15, 5)
	require.Len(t, warnings, 1)
	assert.Equal(t, "fabric_deviation", warnings[0].Code)
}

func TestValidateUnusualRate(t *testing.T) {
	warnings := Validate(15, 15, 0.5)
	require.Len(t, warnings, 1)
	assert.Equal(t, "unusual_fabric_rate", warnings[0].Code)

	warnings = Validate(15, 15, 75)
	require.Len(t, warnings, 1)
	assert.Equal(t, "unusual_fabric_rate", warnings[0].Code)
}

func TestValidateBothWarnings(t *testing.T) {
	warnings := Validate(5, 15, 100)
	require.Len(t, warnings, 2)
	assert.Equal(t, "fabric_deviation", warnings[0].Code)
	assert.Equal(t, "unusual_fabric_rate", warnings[1].Code)
}
