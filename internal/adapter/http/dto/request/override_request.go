package request

import (
	"strings"

	"contractor_takeoff/internal/domain/entities"
)

// OverrideRequest sets (value) or clears (null value) one manual override of a
// hardware line.
type OverrideRequest struct {
	Field string   `json:"field" binding:"required"`
	Value *float64 `json:"value"`
}

func (r OverrideRequest) ResolveField() entities.OverrideField {
	return entities.OverrideField(strings.ToLower(strings.TrimSpace(r.Field)))
}
