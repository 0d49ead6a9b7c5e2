package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewElevationSlots(t *testing.T) {
	slots := NewElevationSlots([]ElevationDefinition{{ID: "front"}, {ID: "rear"}})

	require.Len(t, slots, 2)
	assert.Equal(t, "front", slots[0].ElevationID)
	assert.Equal(t, "rear", slots[1].ElevationID)
	assert.NotNil(t, slots[0].Accessories)
	assert.False(t, slots[0].Completed)
}

func TestElevationMeasurement_MarkComplete(t *testing.T) {
	e := ElevationMeasurement{ElevationID: "front", PanelLength: 10}
	assert.ErrorIs(t, e.MarkComplete(), ErrElevationIncomplete)
	assert.False(t, e.Completed)

	e.PanelWidth = 8
	require.NoError(t, e.MarkComplete())
	assert.True(t, e.Completed)
}

func TestParseTrade(t *testing.T) {
	tr, err := ParseTrade(" Siding ")
	require.NoError(t, err)
	assert.Equal(t, TradeSiding, tr)

	_, err = ParseTrade("brick")
	assert.ErrorIs(t, err, ErrUnknownTrade)
}

func TestHardwareItem_Validate(t *testing.T) {
	valid := HardwareItem{ID: "hw-1", Name: "Kit", Method: MethodPerArea, CoverageUnit: 100}
	assert.NoError(t, valid.Validate())

	bad := []HardwareItem{
		{Name: "Kit", Method: MethodPerArea},
		{ID: "hw-1", Method: MethodPerArea},
		{ID: "hw-1", Name: "Kit", Method: "per_volume"},
		{ID: "hw-1", Name: "Kit", Method: MethodFixedQuantity, FixedQuantity: -1},
		{ID: "hw-1", Name: "Kit", Method: MethodFixedQuantity, BasePrice: -1},
	}
	for _, h := range bad {
		assert.ErrorIs(t, h.Validate(), ErrInvalidHardwareItem)
	}
	assert.True(t, OverridePrice.Valid())
	assert.False(t, OverrideField("color").Valid())
}
