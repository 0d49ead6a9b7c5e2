package calculator

import (
	"contractor_takeoff/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Price resolves material and labor cost of the selected product over the total
// area. Without a selected product every figure is zero; blocking the save is the
// caller's decision.
func (e *Engine) Price(totals entities.ProjectTotals, selection entities.ManufacturerSelection, installationType string) entities.CostBreakdown {
	if !selection.HasProduct() {
		return entities.CostBreakdown{}
	}
	if !selection.IsAreaUnit() {
		e.logger.Warn("product priced in a non-area unit; pricing by area anyway",
			zap.String("product_line_id", selection.ProductLineID),
			zap.String("unit", selection.Unit))
	}

	area := dec(totals.TotalArea)
	material := area.Mul(dec(nonNegative(selection.PricePerUnit)))

	labor := decimal.Zero
	if rate, ok := e.table.LaborRate(installationType); ok {
		labor = area.Mul(dec(rate))
	} else {
		e.logger.Warn("unknown installation type; labor priced at zero",
			zap.String("trade", string(e.table.Trade)),
			zap.String("installation_type", installationType))
	}

	return entities.CostBreakdown{
		MaterialCost: material.InexactFloat64(),
		LaborCost:    labor.InexactFloat64(),
		TotalCost:    material.Add(labor).InexactFloat64(),
	}
}

// Fasteners estimates fastener boxes from total area alone.
func (e *Engine) Fasteners(totalArea float64) entities.FastenerEstimate {
	c := e.table.Fasteners
	out := entities.FastenerEstimate{CoveragePerBox: c.CoveragePerBox, PricePerBox: c.PricePerBox}
	if c.CoveragePerBox <= 0 || totalArea <= 0 {
		return out
	}
	boxes := dec(totalArea).Div(dec(c.CoveragePerBox)).Ceil()
	out.BoxesNeeded = int(boxes.IntPart())
	out.Cost = boxes.Mul(dec(c.PricePerBox)).InexactFloat64()
	return out
}

func nonNegative(f float64) float64 {
	return float64(entities.Measure(f).Clamp())
}
