package response

import (
	"sort"

	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/domain/lookup"
)

type LaborRateResponse struct {
	InstallationType string  `json:"installation_type"`
	RatePerUnit      float64 `json:"rate_per_unit"`
	Default          bool    `json:"default"`
}

// LookupResponse is the reference data the UI builds a takeoff form from.
type LookupResponse struct {
	Trade           string                         `json:"trade"`
	Elevations      []entities.ElevationDefinition `json:"elevations"`
	Accessories     []lookup.Definition            `json:"accessories"`
	ElectricalBoxes []lookup.Definition            `json:"electrical_boxes"`
	LaborRates      []LaborRateResponse            `json:"labor_rates"`
	Fasteners       lookup.FastenerConstants       `json:"fasteners"`
}

func FromTradeTable(t lookup.TradeTable) LookupResponse {
	res := LookupResponse{
		Trade:           string(t.Trade),
		Elevations:      t.Elevations,
		Accessories:     t.Accessories,
		ElectricalBoxes: t.ElectricalBoxes,
		LaborRates:      make([]LaborRateResponse, 0, len(t.LaborRates)),
		Fasteners:       t.Fasteners,
	}
	for kind, rate := range t.LaborRates {
		res.LaborRates = append(res.LaborRates, LaborRateResponse{
			InstallationType: kind,
			RatePerUnit:      rate,
			Default:          kind == t.DefaultInstallation,
		})
	}
	sort.Slice(res.LaborRates, func(i, j int) bool {
		return res.LaborRates[i].InstallationType < res.LaborRates[j].InstallationType
	})
	return res
}
