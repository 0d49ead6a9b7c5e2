package entities

import (
	"errors"
	"strings"
)

var ErrInvalidHardwareItem = errors.New("invalid hardware item")

// CalculationMethod is the formula family used to derive a hardware quantity.
type CalculationMethod string

const (
	MethodFixedQuantity CalculationMethod = "fixed_quantity"
	MethodPerArea       CalculationMethod = "per_area"
	MethodPerLength     CalculationMethod = "per_length"
	MethodPerPerimeter  CalculationMethod = "per_perimeter"
)

func (m CalculationMethod) Known() bool {
	switch m {
	case MethodFixedQuantity, MethodPerArea, MethodPerLength, MethodPerPerimeter:
		return true
	}
	return false
}

// HardwareSource tells where a hardware line came from.
type HardwareSource string

const (
	HardwareSourceManufacturer HardwareSource = "manufacturer"
	HardwareSourceGeneric      HardwareSource = "generic"
)

// HardwareItem is a catalog entry.
//
// Formula configuration:
//   - FixedQuantity is used by fixed_quantity.
//   - per_* methods use ceil(basis / CoverageUnit) when CoverageUnit > 0, otherwise basis * Factor.
//   - PackageSize > 0 converts the result into ceil(quantity / PackageSize) packages (box of N).
type HardwareItem struct {
	ID             string            `json:"id" dynamodbav:"id"`
	Name           string            `json:"name" dynamodbav:"name"`
	Category       Trade             `json:"category" dynamodbav:"category"`
	Unit           string            `json:"unit" dynamodbav:"unit"`
	BasePrice      float64           `json:"base_price" dynamodbav:"base_price"`
	Method         CalculationMethod `json:"method" dynamodbav:"method"`
	FixedQuantity  float64           `json:"fixed_quantity,omitempty" dynamodbav:"fixed_quantity,omitempty"`
	CoverageUnit   float64           `json:"coverage_unit,omitempty" dynamodbav:"coverage_unit,omitempty"`
	Factor         float64           `json:"factor,omitempty" dynamodbav:"factor,omitempty"`
	PackageSize    float64           `json:"package_size,omitempty" dynamodbav:"package_size,omitempty"`
	ManufacturerID string            `json:"manufacturer_id,omitempty" dynamodbav:"manufacturer_id,omitempty"`
	Source         HardwareSource    `json:"source" dynamodbav:"source"`
}

// Validate rejects malformed catalog entries at authoring time. Calculation still
// degrades softly for entries that slipped through.
func (h HardwareItem) Validate() error {
	if strings.TrimSpace(h.ID) == "" || strings.TrimSpace(h.Name) == "" {
		return ErrInvalidHardwareItem
	}
	if !h.Method.Known() {
		return ErrInvalidHardwareItem
	}
	if h.BasePrice < 0 || h.FixedQuantity < 0 || h.CoverageUnit < 0 || h.Factor < 0 || h.PackageSize < 0 {
		return ErrInvalidHardwareItem
	}
	return nil
}

// OverrideField selects which manual override of a hardware line is changed.
type OverrideField string

const (
	OverrideQuantity OverrideField = "quantity"
	OverridePrice    OverrideField = "price"
)

func (f OverrideField) Valid() bool {
	return f == OverrideQuantity || f == OverridePrice
}

// HardwareCalculation is the derived line for one HardwareItem.
//
// Invariants:
//   - FinalQuantity = OverrideQuantity ?? CalculatedQuantity
//   - FinalPricePerUnit = OverridePrice ?? BasePrice
//   - TotalCost = FinalQuantity * FinalPricePerUnit
type HardwareCalculation struct {
	ItemID             string         `json:"item_id" dynamodbav:"item_id"`
	Name               string         `json:"name" dynamodbav:"name"`
	Category           Trade          `json:"category" dynamodbav:"category"`
	Unit               string         `json:"unit" dynamodbav:"unit"`
	Source             HardwareSource `json:"source" dynamodbav:"source"`
	BasePrice          float64        `json:"base_price" dynamodbav:"base_price"`
	CalculatedQuantity float64        `json:"calculated_quantity" dynamodbav:"calculated_quantity"`
	OverrideQuantity   *float64       `json:"override_quantity" dynamodbav:"override_quantity,omitempty"`
	OverridePrice      *float64       `json:"override_price" dynamodbav:"override_price,omitempty"`
	FinalQuantity      float64        `json:"final_quantity" dynamodbav:"final_quantity"`
	FinalPricePerUnit  float64        `json:"final_price_per_unit" dynamodbav:"final_price_per_unit"`
	TotalCost          float64        `json:"total_cost" dynamodbav:"total_cost"`
	Warning            string         `json:"warning,omitempty" dynamodbav:"warning,omitempty"`
}
