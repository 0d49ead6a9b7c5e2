package calculator

import (
	"contractor_takeoff/internal/domain/entities"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const warnUnknownMethod = "unknown calculation method; quantity defaulted to 0"

// MeasurementsFromTotals extracts the figures hardware formulas are driven by.
func MeasurementsFromTotals(totals entities.ProjectTotals) entities.HardwareMeasurements {
	return entities.HardwareMeasurements{
		Area:       totals.TotalArea,
		LinearFeet: totals.TotalAccessoryFeet,
		Perimeter:  totals.Perimeter,
	}
}

// MergeHardwareItems returns manufacturer-bundled items followed by the generic
// items the operator added. A generic item duplicating a bundled id is dropped.
func MergeHardwareItems(manufacturer, generic []entities.HardwareItem) []entities.HardwareItem {
	out := make([]entities.HardwareItem, 0, len(manufacturer)+len(generic))
	seen := make(map[string]struct{}, len(manufacturer)+len(generic))
	for _, it := range manufacturer {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		it.Source = entities.HardwareSourceManufacturer
		out = append(out, it)
	}
	for _, it := range generic {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		it.Source = entities.HardwareSourceGeneric
		out = append(out, it)
	}
	return out
}

// CalculateHardware derives a calculation for every item, in input order.
//
// Manual overrides found in prior (keyed by item id) are carried over regardless
// of how the rest of the item list changed.
func (e *Engine) CalculateHardware(items []entities.HardwareItem, m entities.HardwareMeasurements, prior []entities.HardwareCalculation) []entities.HardwareCalculation {
	overrides := make(map[string]entities.HardwareCalculation, len(prior))
	for _, p := range prior {
		overrides[p.ItemID] = p
	}

	out := make([]entities.HardwareCalculation, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}

		qty, known := calculatedQuantity(it, m)
		calc := entities.HardwareCalculation{
			ItemID:             it.ID,
			Name:               it.Name,
			Category:           it.Category,
			Unit:               it.Unit,
			Source:             it.Source,
			BasePrice:          nonNegative(it.BasePrice),
			CalculatedQuantity: qty,
		}
		if !known {
			calc.Warning = warnUnknownMethod
			e.logger.Warn(warnUnknownMethod,
				zap.String("item_id", it.ID),
				zap.String("method", string(it.Method)))
		}
		if p, ok := overrides[it.ID]; ok {
			calc.OverrideQuantity = copyFloat(p.OverrideQuantity)
			calc.OverridePrice = copyFloat(p.OverridePrice)
		}
		out = append(out, resolve(calc))
	}
	return out
}

// UpdateOverride sets one override field of the matching line; a nil value clears
// that field only. The input slice is left untouched.
func UpdateOverride(calcs []entities.HardwareCalculation, itemID string, field entities.OverrideField, value *float64) []entities.HardwareCalculation {
	out := make([]entities.HardwareCalculation, len(calcs))
	for i, c := range calcs {
		c.OverrideQuantity = copyFloat(c.OverrideQuantity)
		c.OverridePrice = copyFloat(c.OverridePrice)
		if c.ItemID == itemID {
			var v *float64
			if value != nil {
				f := nonNegative(*value)
				v = &f
			}
			switch field {
			case entities.OverrideQuantity:
				c.OverrideQuantity = v
			case entities.OverridePrice:
				c.OverridePrice = v
			}
			c = resolve(c)
		}
		out[i] = c
	}
	return out
}

// HardwareTotal sums the line cost of every calculation.
func HardwareTotal(calcs []entities.HardwareCalculation) float64 {
	sum := decimal.Zero
	for _, c := range calcs {
		sum = sum.Add(dec(c.TotalCost))
	}
	return sum.InexactFloat64()
}

func calculatedQuantity(it entities.HardwareItem, m entities.HardwareMeasurements) (float64, bool) {
	var basis float64
	switch it.Method {
	case entities.MethodFixedQuantity:
		return nonNegative(it.FixedQuantity), true
	case entities.MethodPerArea:
		basis = m.Area
	case entities.MethodPerLength:
		basis = m.LinearFeet
	case entities.MethodPerPerimeter:
		basis = m.Perimeter
	default:
		return 0, false
	}

	b := dec(nonNegative(basis))
	var q decimal.Decimal
	if cov := nonNegative(it.CoverageUnit); cov > 0 {
		q = b.Div(dec(cov)).Ceil()
	} else {
		q = b.Mul(dec(nonNegative(it.Factor)))
	}
	if pkg := nonNegative(it.PackageSize); pkg > 0 {
		q = q.Div(dec(pkg)).Ceil()
	}
	return q.InexactFloat64(), true
}

func resolve(c entities.HardwareCalculation) entities.HardwareCalculation {
	c.FinalQuantity = c.CalculatedQuantity
	if c.OverrideQuantity != nil {
		c.FinalQuantity = *c.OverrideQuantity
	}
	c.FinalPricePerUnit = c.BasePrice
	if c.OverridePrice != nil {
		c.FinalPricePerUnit = *c.OverridePrice
	}
	c.TotalCost = dec(c.FinalQuantity).Mul(dec(c.FinalPricePerUnit)).InexactFloat64()
	return c
}

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
