package request

import "contractor_takeoff/internal/domain/entities"

// HardwareItemRequest is a contractor-authored generic catalog item.
type HardwareItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Unit          string  `json:"unit"`
	BasePrice     float64 `json:"base_price"`
	Method        string  `json:"method" binding:"required"`
	FixedQuantity float64 `json:"fixed_quantity"`
	CoverageUnit  float64 `json:"coverage_unit"`
	Factor        float64 `json:"factor"`
	PackageSize   float64 `json:"package_size"`
}

func (r HardwareItemRequest) ToEntity() entities.HardwareItem {
	return entities.HardwareItem{
		Name:          r.Name,
		Category:      entities.Trade(r.Category),
		Unit:          r.Unit,
		BasePrice:     r.BasePrice,
		Method:        entities.CalculationMethod(r.Method),
		FixedQuantity: r.FixedQuantity,
		CoverageUnit:  r.CoverageUnit,
		Factor:        r.Factor,
		PackageSize:   r.PackageSize,
	}
}
