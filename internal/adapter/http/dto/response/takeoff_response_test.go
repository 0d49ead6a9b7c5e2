package response

import (
	"testing"
	"time"

	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/domain/lookup"
)

func TestFromTakeoff(t *testing.T) {
	now := time.Now().UTC()
	to := entities.Takeoff{
		ID:         "tk-1",
		CustomerID: "c-1",
		Trade:      entities.TradeStone,
		Elevations: []entities.ElevationMeasurement{
			{ElevationID: "front", Completed: true},
			{ElevationID: "rear"},
		},
		Selection:  entities.ManufacturerSelection{ManufacturerID: "m", ProductLineID: "p"},
		GrandTotal: 123.45,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromTakeoff(to)
	if res.ID != "tk-1" || res.Trade != "stone" || res.GrandTotal != 123.45 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.CompletedElevations != 1 || !res.CanSave {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
	if res.Hardware == nil {
		t.Fatalf("expected empty hardware slice, got nil")
	}
	if res.CreatedAt == nil || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromTakeoff_Unsaved(t *testing.T) {
	res := FromTakeoff(entities.Takeoff{Trade: entities.TradeSiding})
	if res.CreatedAt != nil || res.UpdatedAt != nil {
		t.Fatalf("expected no timestamps on unsaved takeoff: %+v", res)
	}
	if res.CanSave {
		t.Fatalf("expected can_save false without product")
	}
	if res.Elevations == nil {
		t.Fatalf("expected empty elevations slice, got nil")
	}
}

func TestFromHardwareItems(t *testing.T) {
	res := FromHardwareItems([]entities.HardwareItem{
		{ID: "hw-1", Category: entities.TradeSiding, Method: entities.MethodPerArea, Source: entities.HardwareSourceGeneric},
	})
	if len(res) != 1 || res[0].Category != "siding" || res[0].Method != "per_area" || res[0].Source != "generic" {
		t.Fatalf("unexpected items: %+v", res)
	}
	if empty := FromHardwareItems(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", empty)
	}
}

func TestFromTradeTable(t *testing.T) {
	res := FromTradeTable(lookup.TradeTable{
		Trade:               entities.TradeSiding,
		DefaultInstallation: "standard",
		LaborRates:          map[string]float64{"standard": 5, "premium": 6.5},
	})
	if res.Trade != "siding" || len(res.LaborRates) != 2 {
		t.Fatalf("unexpected lookup: %+v", res)
	}
	if res.LaborRates[0].InstallationType != "premium" || res.LaborRates[0].Default {
		t.Fatalf("expected sorted labor rates, got %+v", res.LaborRates)
	}
	if !res.LaborRates[1].Default {
		t.Fatalf("expected standard to be the default: %+v", res.LaborRates[1])
	}
}
