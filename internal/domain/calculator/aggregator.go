package calculator

import (
	"contractor_takeoff/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type elevationSums struct {
	panel, corner, total, perimeter decimal.Decimal
}

// Aggregate rolls every elevation up into project totals.
//
// Incomplete elevations are not skipped; they contribute whatever was entered.
// Sums are exact, so the result does not depend on elevation order.
func (e *Engine) Aggregate(elevations []entities.ElevationMeasurement) entities.ProjectTotals {
	var panel, corner, total, perimeter decimal.Decimal
	byElevation := make(map[string]elevationSums, len(elevations))
	accessories := make(map[string]decimal.Decimal, len(e.table.Accessories))
	boxes := make(map[string]int, len(e.table.ElectricalBoxes))

	for _, el := range elevations {
		s := measureElevation(el)
		panel = panel.Add(s.panel)
		corner = corner.Add(s.corner)
		total = total.Add(s.total)
		perimeter = perimeter.Add(s.perimeter)

		acc := byElevation[el.ElevationID]
		acc.panel = acc.panel.Add(s.panel)
		acc.corner = acc.corner.Add(s.corner)
		acc.total = acc.total.Add(s.total)
		acc.perimeter = acc.perimeter.Add(s.perimeter)
		byElevation[el.ElevationID] = acc

		for _, def := range e.table.Accessories {
			accessories[def.ID] = accessories[def.ID].Add(dec(el.Accessories[def.ID].Float64()))
		}
		for _, def := range e.table.ElectricalBoxes {
			boxes[def.ID] += entities.Count(el.ElectricalBoxes[def.ID])
		}
	}

	out := entities.ProjectTotals{
		PanelArea:       panel.InexactFloat64(),
		CornerArea:      corner.InexactFloat64(),
		TotalArea:       total.InexactFloat64(),
		Perimeter:       perimeter.InexactFloat64(),
		ByElevation:     make(map[string]entities.ElevationTotals, len(byElevation)),
		AccessoryFeet:   make(map[string]float64, len(e.table.Accessories)),
		ElectricalBoxes: make(map[string]int, len(e.table.ElectricalBoxes)),
	}
	for id, s := range byElevation {
		out.ByElevation[id] = entities.ElevationTotals{
			PanelArea:  s.panel.InexactFloat64(),
			CornerArea: s.corner.InexactFloat64(),
			TotalArea:  s.total.InexactFloat64(),
			Perimeter:  s.perimeter.InexactFloat64(),
		}
	}

	var accessoryFeet decimal.Decimal
	for _, def := range e.table.Accessories {
		v := accessories[def.ID]
		out.AccessoryFeet[def.ID] = v.InexactFloat64()
		accessoryFeet = accessoryFeet.Add(v)
	}
	out.TotalAccessoryFeet = accessoryFeet.InexactFloat64()

	for _, def := range e.table.ElectricalBoxes {
		out.ElectricalBoxes[def.ID] = boxes[def.ID]
		out.TotalElectricalBoxes += boxes[def.ID]
	}
	return out
}

func measureElevation(el entities.ElevationMeasurement) elevationSums {
	length, width := dec(el.PanelLength.Float64()), dec(el.PanelWidth.Float64())
	panel := length.Mul(width)
	corner := dec(el.CornerLength.Float64()).Mul(dec(el.CornerWidth.Float64()))

	perimeter := decimal.Zero
	if length.IsPositive() && width.IsPositive() {
		perimeter = length.Add(width).Mul(decimal.NewFromInt(2))
	}
	return elevationSums{
		panel:     panel,
		corner:    corner,
		total:     panel.Add(corner),
		perimeter: perimeter,
	}
}
