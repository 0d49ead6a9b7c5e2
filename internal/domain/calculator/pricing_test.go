package calculator

import (
	"testing"

	"contractor_takeoff/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestPrice_Example(t *testing.T) {
	e := newTestEngine(t)

	costs := e.Price(entities.ProjectTotals{TotalArea: 188}, productSelection(12.50), "standard")

	assert.Equal(t, 2350.0, costs.MaterialCost)
	assert.Equal(t, 940.0, costs.LaborCost)
	assert.Equal(t, 3290.0, costs.TotalCost)
}

func TestPrice_DefaultInstallationType(t *testing.T) {
	e := newTestEngine(t)

	costs := e.Price(entities.ProjectTotals{TotalArea: 188}, productSelection(12.50), "")
	assert.Equal(t, 940.0, costs.LaborCost)

	premium := e.Price(entities.ProjectTotals{TotalArea: 100}, productSelection(1), "premium")
	assert.Equal(t, 650.0, premium.LaborCost)
}

func TestPrice_NoProductSelected(t *testing.T) {
	e := newTestEngine(t)

	cases := map[string]entities.ManufacturerSelection{
		"empty":             {},
		"manufacturer only": {ManufacturerID: "mfr-1", PricePerUnit: 12.5},
	}
	for name, sel := range cases {
		t.Run(name, func(t *testing.T) {
			costs := e.Price(entities.ProjectTotals{TotalArea: 188}, sel, "standard")
			assert.Equal(t, entities.CostBreakdown{}, costs)
		})
	}
}

func TestPrice_UnknownInstallationTypeLogsAndZeroesLabor(t *testing.T) {
	e, logs := newObservedEngine(t)

	costs := e.Price(entities.ProjectTotals{TotalArea: 10}, productSelection(2), "gold")

	assert.Equal(t, 20.0, costs.MaterialCost)
	assert.Equal(t, 0.0, costs.LaborCost)
	assert.Equal(t, 20.0, costs.TotalCost)
	assert.Equal(t, 1, logs.FilterMessage("unknown installation type; labor priced at zero").Len())
}

func TestPrice_NonAreaUnitWarns(t *testing.T) {
	e, logs := newObservedEngine(t)
	sel := productSelection(3)
	sel.Unit = "piece"

	costs := e.Price(entities.ProjectTotals{TotalArea: 10}, sel, "standard")

	assert.Equal(t, 30.0, costs.MaterialCost)
	assert.Equal(t, 1, logs.Len())
}

func TestFasteners(t *testing.T) {
	e := newTestEngine(t)

	t.Run("example", func(t *testing.T) {
		f := e.Fasteners(188)
		assert.Equal(t, 2, f.BoxesNeeded)
		assert.Equal(t, 90.0, f.Cost)
		assert.Equal(t, 100.0, f.CoveragePerBox)
		assert.Equal(t, 45.0, f.PricePerBox)
	})

	t.Run("exact multiple", func(t *testing.T) {
		f := e.Fasteners(200)
		assert.Equal(t, 2, f.BoxesNeeded)
	})

	t.Run("zero area", func(t *testing.T) {
		f := e.Fasteners(0)
		assert.Equal(t, 0, f.BoxesNeeded)
		assert.Equal(t, 0.0, f.Cost)
	})
}
