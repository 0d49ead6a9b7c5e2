package entities

import "time"

// Takeoff is the complete measurement-and-pricing record of one trade's work on a
// customer project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// The id is stable: the first save creates the record, later saves update it in place.
type Takeoff struct {
	ID               string                 `json:"id"`
	CustomerID       string                 `json:"customer_id"`
	ProjectID        string                 `json:"project_id"`
	Trade            Trade                  `json:"trade"`
	InstallationType string                 `json:"installation_type"`
	Elevations       []ElevationMeasurement `json:"elevations"`
	Selection        ManufacturerSelection  `json:"selection"`
	Hardware         []HardwareCalculation  `json:"hardware"`
	Totals           ProjectTotals          `json:"totals"`
	Costs            CostBreakdown          `json:"costs"`
	Fasteners        FastenerEstimate       `json:"fasteners"`
	HardwareTotal    float64                `json:"hardware_total"`
	GrandTotal       float64                `json:"grand_total"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}
