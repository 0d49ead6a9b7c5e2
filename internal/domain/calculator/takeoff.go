package calculator

import (
	"contractor_takeoff/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AssemblyInput is everything the engine needs to build a takeoff.
type AssemblyInput struct {
	Elevations       []entities.ElevationMeasurement
	Selection        entities.ManufacturerSelection
	InstallationType string
	Hardware         []entities.HardwareItem
	PriorHardware    []entities.HardwareCalculation
}

// Assemble runs aggregation, pricing, fasteners and hardware in one pass and
// returns the derived part of a takeoff. Identity and timestamps are left to the caller.
func (e *Engine) Assemble(in AssemblyInput) entities.Takeoff {
	totals := e.Aggregate(in.Elevations)
	costs := e.Price(totals, in.Selection, in.InstallationType)
	fasteners := e.Fasteners(totals.TotalArea)
	hardware := e.CalculateHardware(in.Hardware, MeasurementsFromTotals(totals), in.PriorHardware)
	hardwareTotal := HardwareTotal(hardware)

	installation := in.InstallationType
	if installation == "" {
		installation = e.table.DefaultInstallation
	}

	return entities.Takeoff{
		Trade:            e.table.Trade,
		InstallationType: installation,
		Elevations:       in.Elevations,
		Selection:        in.Selection,
		Hardware:         hardware,
		Totals:           totals,
		Costs:            costs,
		Fasteners:        fasteners,
		HardwareTotal:    hardwareTotal,
		GrandTotal:       grandTotal(costs, fasteners, hardwareTotal),
	}
}

// Reprice recomputes the derived figures of an existing takeoff after its
// hardware calculations were edited in place (override updates).
func (e *Engine) Reprice(t entities.Takeoff) entities.Takeoff {
	t.HardwareTotal = HardwareTotal(t.Hardware)
	t.GrandTotal = grandTotal(t.Costs, t.Fasteners, t.HardwareTotal)
	return t
}

func grandTotal(costs entities.CostBreakdown, fasteners entities.FastenerEstimate, hardwareTotal float64) float64 {
	return decimal.Sum(dec(costs.TotalCost), dec(fasteners.Cost), dec(hardwareTotal)).InexactFloat64()
}
