package entities

import "errors"

var ErrElevationIncomplete = errors.New("elevation requires positive panel length and width")

// ElevationMeasurement holds what was measured on one face of the structure.
//
// Lifecycle:
//   - created empty per elevation slot when a takeoff starts (NewElevationSlots)
//   - mutated field by field while the operator enters measurements
//   - marked complete when the operator advances past it
type ElevationMeasurement struct {
	ElevationID     string             `json:"elevation_id" dynamodbav:"elevation_id"`
	PanelLength     Measure            `json:"panel_length" dynamodbav:"panel_length"`
	PanelWidth      Measure            `json:"panel_width" dynamodbav:"panel_width"`
	CornerLength    Measure            `json:"corner_length" dynamodbav:"corner_length"`
	CornerWidth     Measure            `json:"corner_width" dynamodbav:"corner_width"`
	Accessories     map[string]Measure `json:"accessories,omitempty" dynamodbav:"accessories,omitempty"`
	ElectricalBoxes map[string]int     `json:"electrical_boxes,omitempty" dynamodbav:"electrical_boxes,omitempty"`
	Completed       bool               `json:"completed" dynamodbav:"completed"`
}

// ElevationDefinition is one entry of the fixed, ordered elevation list of a trade.
type ElevationDefinition struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// NewElevationSlots returns one empty measurement per definition, in definition order.
func NewElevationSlots(defs []ElevationDefinition) []ElevationMeasurement {
	out := make([]ElevationMeasurement, 0, len(defs))
	for _, d := range defs {
		out = append(out, ElevationMeasurement{
			ElevationID:     d.ID,
			Accessories:     map[string]Measure{},
			ElectricalBoxes: map[string]int{},
		})
	}
	return out
}

func (e ElevationMeasurement) CanComplete() bool {
	return e.PanelLength.Float64() > 0 && e.PanelWidth.Float64() > 0
}

func (e *ElevationMeasurement) MarkComplete() error {
	if !e.CanComplete() {
		return ErrElevationIncomplete
	}
	e.Completed = true
	return nil
}
