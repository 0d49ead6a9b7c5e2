package response

import "contractor_takeoff/internal/domain/entities"

type HardwareItemResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
	BasePrice      float64 `json:"base_price"`
	Method         string  `json:"method"`
	FixedQuantity  float64 `json:"fixed_quantity,omitempty"`
	CoverageUnit   float64 `json:"coverage_unit,omitempty"`
	Factor         float64 `json:"factor,omitempty"`
	PackageSize    float64 `json:"package_size,omitempty"`
	ManufacturerID string  `json:"manufacturer_id,omitempty"`
	Source         string  `json:"source"`
}

func FromHardwareItem(h entities.HardwareItem) HardwareItemResponse {
	return HardwareItemResponse{
		ID:             h.ID,
		Name:           h.Name,
		Category:       string(h.Category),
		Unit:           h.Unit,
		BasePrice:      h.BasePrice,
		Method:         string(h.Method),
		FixedQuantity:  h.FixedQuantity,
		CoverageUnit:   h.CoverageUnit,
		Factor:         h.Factor,
		PackageSize:    h.PackageSize,
		ManufacturerID: h.ManufacturerID,
		Source:         string(h.Source),
	}
}

func FromHardwareItems(items []entities.HardwareItem) []HardwareItemResponse {
	out := make([]HardwareItemResponse, 0, len(items))
	for _, h := range items {
		out = append(out, FromHardwareItem(h))
	}
	return out
}
