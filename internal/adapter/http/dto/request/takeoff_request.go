package request

import (
	"strings"

	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase"
)

// ElevationRequest carries the raw measurements of one elevation. Numeric fields
// accept numbers or numeric strings; anything unparseable counts as 0.
type ElevationRequest struct {
	ElevationID     string                      `json:"elevation_id" binding:"required"`
	PanelLength     entities.Measure            `json:"panel_length"`
	PanelWidth      entities.Measure            `json:"panel_width"`
	CornerLength    entities.Measure            `json:"corner_length"`
	CornerWidth     entities.Measure            `json:"corner_width"`
	Accessories     map[string]entities.Measure `json:"accessories"`
	ElectricalBoxes map[string]entities.Measure `json:"electrical_boxes"`
	Completed       bool                        `json:"completed"`
}

type SelectionRequest struct {
	ManufacturerID   string           `json:"manufacturer_id"`
	ManufacturerName string           `json:"manufacturer_name"`
	ProductLineID    string           `json:"product_line_id"`
	ProductLineName  string           `json:"product_line_name"`
	ColorID          string           `json:"color_id"`
	ColorName        string           `json:"color_name"`
	ColorHex         string           `json:"color_hex"`
	PricePerUnit     entities.Measure `json:"price_per_unit"`
	Unit             string           `json:"unit"`
}

type HardwareOverrideRequest struct {
	ItemID   string   `json:"item_id" binding:"required"`
	Quantity *float64 `json:"quantity"`
	Price    *float64 `json:"price"`
}

// TakeoffRequest is the payload of preview, create and update.
type TakeoffRequest struct {
	CustomerID         string                    `json:"customer_id"`
	ProjectID          string                    `json:"project_id"`
	Trade              string                    `json:"trade" binding:"required"`
	InstallationType   string                    `json:"installation_type"`
	Elevations         []ElevationRequest        `json:"elevations" binding:"dive"`
	Selection          SelectionRequest          `json:"selection"`
	GenericHardwareIDs []string                  `json:"generic_hardware_ids"`
	HardwareOverrides  []HardwareOverrideRequest `json:"hardware_overrides" binding:"dive"`
}

// DraftRequest starts an empty takeoff.
type DraftRequest struct {
	Trade      string `json:"trade" binding:"required"`
	CustomerID string `json:"customer_id" binding:"required"`
	ProjectID  string `json:"project_id"`
}

// ToCommand maps the payload to the use case command. id is empty for creates
// and previews.
func (r TakeoffRequest) ToCommand(id string) usecase.TakeoffCommand {
	cmd := usecase.TakeoffCommand{
		ID:                 strings.TrimSpace(id),
		CustomerID:         r.CustomerID,
		ProjectID:          r.ProjectID,
		Trade:              r.Trade,
		InstallationType:   r.InstallationType,
		Elevations:         make([]entities.ElevationMeasurement, 0, len(r.Elevations)),
		Selection:          r.Selection.toEntity(),
		GenericHardwareIDs: r.GenericHardwareIDs,
	}
	for _, el := range r.Elevations {
		cmd.Elevations = append(cmd.Elevations, el.toEntity())
	}
	for _, o := range r.HardwareOverrides {
		cmd.HardwareOverrides = append(cmd.HardwareOverrides, usecase.HardwareOverride{
			ItemID:   strings.TrimSpace(o.ItemID),
			Quantity: o.Quantity,
			Price:    o.Price,
		})
	}
	return cmd
}

func (r ElevationRequest) toEntity() entities.ElevationMeasurement {
	out := entities.ElevationMeasurement{
		ElevationID:     r.ElevationID,
		PanelLength:     r.PanelLength.Clamp(),
		PanelWidth:      r.PanelWidth.Clamp(),
		CornerLength:    r.CornerLength.Clamp(),
		CornerWidth:     r.CornerWidth.Clamp(),
		Accessories:     make(map[string]entities.Measure, len(r.Accessories)),
		ElectricalBoxes: make(map[string]int, len(r.ElectricalBoxes)),
		Completed:       r.Completed,
	}
	for id, feet := range r.Accessories {
		out.Accessories[id] = feet.Clamp()
	}
	for id, n := range r.ElectricalBoxes {
		out.ElectricalBoxes[id] = entities.Count(int(n.Clamp()))
	}
	return out
}

func (r SelectionRequest) toEntity() entities.ManufacturerSelection {
	return entities.ManufacturerSelection{
		ManufacturerID:   strings.TrimSpace(r.ManufacturerID),
		ManufacturerName: strings.TrimSpace(r.ManufacturerName),
		ProductLineID:    strings.TrimSpace(r.ProductLineID),
		ProductLineName:  strings.TrimSpace(r.ProductLineName),
		ColorID:          strings.TrimSpace(r.ColorID),
		ColorName:        strings.TrimSpace(r.ColorName),
		ColorHex:         strings.TrimSpace(r.ColorHex),
		PricePerUnit:     r.PricePerUnit.Clamp().Float64(),
		Unit:             strings.TrimSpace(r.Unit),
	}
}
