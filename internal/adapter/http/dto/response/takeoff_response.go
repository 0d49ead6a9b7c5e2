package response

import (
	"time"

	"contractor_takeoff/internal/domain/entities"
)

type TakeoffResponse struct {
	ID                  string                          `json:"id"`
	CustomerID          string                          `json:"customer_id"`
	ProjectID           string                          `json:"project_id"`
	Trade               string                          `json:"trade"`
	InstallationType    string                          `json:"installation_type"`
	Elevations          []entities.ElevationMeasurement `json:"elevations"`
	CompletedElevations int                             `json:"completed_elevations"`
	Selection           entities.ManufacturerSelection  `json:"selection"`
	CanSave             bool                            `json:"can_save"`
	Totals              entities.ProjectTotals          `json:"totals"`
	Costs               entities.CostBreakdown          `json:"costs"`
	Fasteners           entities.FastenerEstimate       `json:"fasteners"`
	Hardware            []entities.HardwareCalculation  `json:"hardware"`
	HardwareTotal       float64                         `json:"hardware_total"`
	GrandTotal          float64                         `json:"grand_total"`
	CreatedAt           *time.Time                      `json:"created_at,omitempty"`
	UpdatedAt           *time.Time                      `json:"updated_at,omitempty"`
}

func FromTakeoff(t entities.Takeoff) TakeoffResponse {
	res := TakeoffResponse{
		ID:               t.ID,
		CustomerID:       t.CustomerID,
		ProjectID:        t.ProjectID,
		Trade:            string(t.Trade),
		InstallationType: t.InstallationType,
		Elevations:       t.Elevations,
		Selection:        t.Selection,
		CanSave:          t.Selection.HasProduct(),
		Totals:           t.Totals,
		Costs:            t.Costs,
		Fasteners:        t.Fasteners,
		Hardware:         t.Hardware,
		HardwareTotal:    t.HardwareTotal,
		GrandTotal:       t.GrandTotal,
	}
	if res.Elevations == nil {
		res.Elevations = []entities.ElevationMeasurement{}
	}
	if res.Hardware == nil {
		res.Hardware = []entities.HardwareCalculation{}
	}
	for _, el := range t.Elevations {
		if el.Completed {
			res.CompletedElevations++
		}
	}
	// Drafts and previews are never stored and carry no timestamps.
	if !t.CreatedAt.IsZero() {
		created := t.CreatedAt
		res.CreatedAt = &created
	}
	if !t.UpdatedAt.IsZero() {
		updated := t.UpdatedAt
		res.UpdatedAt = &updated
	}
	return res
}

func FromTakeoffs(list []entities.Takeoff) []TakeoffResponse {
	out := make([]TakeoffResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTakeoff(t))
	}
	return out
}
