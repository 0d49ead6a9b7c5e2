package entities

// ElevationTotals is the derived area/perimeter of one elevation.
type ElevationTotals struct {
	PanelArea  float64 `json:"panel_area" dynamodbav:"panel_area"`
	CornerArea float64 `json:"corner_area" dynamodbav:"corner_area"`
	TotalArea  float64 `json:"total_area" dynamodbav:"total_area"`
	Perimeter  float64 `json:"perimeter" dynamodbav:"perimeter"`
}

// ProjectTotals is a pure aggregation over every ElevationMeasurement of a takeoff.
// It is recomputed on every change and never mutated directly.
//
// Panel-only and combined areas are both exposed: some product lines price panel
// material separately from corner trim.
type ProjectTotals struct {
	PanelArea            float64                    `json:"panel_area" dynamodbav:"panel_area"`
	CornerArea           float64                    `json:"corner_area" dynamodbav:"corner_area"`
	TotalArea            float64                    `json:"total_area" dynamodbav:"total_area"`
	Perimeter            float64                    `json:"perimeter" dynamodbav:"perimeter"`
	ByElevation          map[string]ElevationTotals `json:"by_elevation" dynamodbav:"by_elevation"`
	AccessoryFeet        map[string]float64         `json:"accessory_feet" dynamodbav:"accessory_feet"`
	TotalAccessoryFeet   float64                    `json:"total_accessory_feet" dynamodbav:"total_accessory_feet"`
	ElectricalBoxes      map[string]int             `json:"electrical_boxes" dynamodbav:"electrical_boxes"`
	TotalElectricalBoxes int                        `json:"total_electrical_boxes" dynamodbav:"total_electrical_boxes"`
}

// CostBreakdown is the output of the pricing resolver.
type CostBreakdown struct {
	MaterialCost float64 `json:"material_cost" dynamodbav:"material_cost"`
	LaborCost    float64 `json:"labor_cost" dynamodbav:"labor_cost"`
	TotalCost    float64 `json:"total_cost" dynamodbav:"total_cost"`
}

// FastenerEstimate is the fastener consumption derived from total area alone.
type FastenerEstimate struct {
	BoxesNeeded    int     `json:"boxes_needed" dynamodbav:"boxes_needed"`
	CoveragePerBox float64 `json:"coverage_per_box" dynamodbav:"coverage_per_box"`
	PricePerBox    float64 `json:"price_per_box" dynamodbav:"price_per_box"`
	Cost           float64 `json:"cost" dynamodbav:"cost"`
}

// HardwareMeasurements are the aggregated figures hardware formulas are driven by.
type HardwareMeasurements struct {
	Area       float64 `json:"area"`
	LinearFeet float64 `json:"linear_feet"`
	Perimeter  float64 `json:"perimeter"`
}
