package usecase

import (
	"context"
	"errors"
	"testing"

	"contractor_takeoff/internal/domain/entities"
	mock_interfaces "contractor_takeoff/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestHardwareCatalogUseCase_ListByTrade(t *testing.T) {
	t.Run("unknown trade", func(t *testing.T) {
		uc := NewHardwareCatalogUseCase(nil, nil)
		_, err := uc.ListByTrade(context.Background(), "roofing")
		if !errors.Is(err, entities.ErrUnknownTrade) {
			t.Fatalf("expected ErrUnknownTrade, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHardwareCatalogRepository(ctrl)
		uc := NewHardwareCatalogUseCase(repo, nil)

		repo.EXPECT().ListByCategory(gomock.Any(), entities.TradeStone).Return([]entities.HardwareItem{{ID: "a"}}, nil)

		res, err := uc.ListByTrade(context.Background(), "STONE")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}

func TestHardwareCatalogUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewHardwareCatalogUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidHardwareID) {
			t.Fatalf("expected ErrInvalidHardwareID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHardwareCatalogRepository(ctrl)
		uc := NewHardwareCatalogUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "hw-1").Return(entities.HardwareItem{}, nil)

		_, err := uc.GetByID(context.Background(), "hw-1")
		if !errors.Is(err, ErrHardwareItemNotFound) {
			t.Fatalf("expected ErrHardwareItemNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHardwareCatalogRepository(ctrl)
		uc := NewHardwareCatalogUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "hw-1").Return(entities.HardwareItem{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "hw-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestHardwareCatalogUseCase_AddGenericItem(t *testing.T) {
	t.Run("unknown method rejected", func(t *testing.T) {
		uc := NewHardwareCatalogUseCase(nil, nil)
		_, err := uc.AddGenericItem(context.Background(), entities.HardwareItem{
			Name:     "Flashing",
			Category: "siding",
			Method:   "per_window",
		})
		if !errors.Is(err, entities.ErrInvalidHardwareItem) {
			t.Fatalf("expected ErrInvalidHardwareItem, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewHardwareCatalogUseCase(nil, nil)
		_, err := uc.AddGenericItem(context.Background(), entities.HardwareItem{Name: "Flashing", Category: "roofing", Method: entities.MethodPerLength})
		if !errors.Is(err, entities.ErrUnknownTrade) {
			t.Fatalf("expected ErrUnknownTrade, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIHardwareCatalogRepository(ctrl)
		uc := NewHardwareCatalogUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.HardwareItem{})).DoAndReturn(
			func(_ context.Context, it entities.HardwareItem) (entities.HardwareItem, error) {
				if it.ID == "" || it.Name != "Flashing" || it.Category != entities.TradeSiding {
					t.Fatalf("unexpected item: %+v", it)
				}
				if it.Method != entities.MethodPerLength || it.Source != entities.HardwareSourceGeneric || it.ManufacturerID != "" {
					t.Fatalf("unexpected normalization: %+v", it)
				}
				return it, nil
			},
		)

		res, err := uc.AddGenericItem(context.Background(), entities.HardwareItem{
			ID:             "client-supplied",
			Name:           " Flashing ",
			Category:       " Siding ",
			Method:         " PER_LENGTH ",
			Factor:         1.1,
			BasePrice:      2,
			ManufacturerID: "mfr-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "client-supplied" {
			t.Fatalf("expected server generated id")
		}
	})
}
