package usecase

import (
	"context"
	"errors"
	"strings"

	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidHardwareID = errors.New("invalid hardware item id")

//go:generate mockgen -source=hardware_catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_hardware_catalog_usecase.go -package=mocks

// IHardwareCatalogUseCase exposes the hardware catalog the takeoff engine draws from.
type IHardwareCatalogUseCase interface {
	ListByTrade(ctx context.Context, trade string) ([]entities.HardwareItem, error)
	GetByID(ctx context.Context, id string) (entities.HardwareItem, error)
	AddGenericItem(ctx context.Context, item entities.HardwareItem) (entities.HardwareItem, error)
}

type HardwareCatalogUseCase struct {
	repo   interfaces.IHardwareCatalogRepository
	logger *zap.Logger
}

var _ IHardwareCatalogUseCase = (*HardwareCatalogUseCase)(nil)

func NewHardwareCatalogUseCase(repo interfaces.IHardwareCatalogRepository, logger *zap.Logger) *HardwareCatalogUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HardwareCatalogUseCase{repo: repo, logger: logger.Named("hardware.usecase")}
}

func (u *HardwareCatalogUseCase) ListByTrade(ctx context.Context, trade string) ([]entities.HardwareItem, error) {
	t, err := entities.ParseTrade(trade)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByCategory(ctx, t)
}

func (u *HardwareCatalogUseCase) GetByID(ctx context.Context, id string) (entities.HardwareItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HardwareItem{}, ErrInvalidHardwareID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.HardwareItem{}, err
	}
	if item.ID == "" {
		return entities.HardwareItem{}, ErrHardwareItemNotFound
	}
	return item, nil
}

// AddGenericItem stores a contractor-added catalog item. Malformed entries, such
// as an unknown calculation method, are rejected here rather than silently priced at zero.
func (u *HardwareCatalogUseCase) AddGenericItem(ctx context.Context, item entities.HardwareItem) (entities.HardwareItem, error) {
	category, err := entities.ParseTrade(string(item.Category))
	if err != nil {
		return entities.HardwareItem{}, err
	}
	item.Category = category
	item.ID = uuid.NewString()
	item.Name = strings.TrimSpace(item.Name)
	item.Unit = strings.TrimSpace(item.Unit)
	item.Method = entities.CalculationMethod(strings.ToLower(strings.TrimSpace(string(item.Method))))
	item.ManufacturerID = ""
	item.Source = entities.HardwareSourceGeneric

	if err := item.Validate(); err != nil {
		u.logger.Info("rejected catalog item",
			zap.String("name", item.Name),
			zap.String("method", string(item.Method)))
		return entities.HardwareItem{}, err
	}

	created, err := u.repo.Create(ctx, item)
	if err != nil {
		u.logger.Error("catalog create failed", zap.String("item_id", item.ID), zap.Error(err))
		return entities.HardwareItem{}, err
	}
	u.logger.Info("catalog item added", zap.String("item_id", created.ID), zap.String("category", string(created.Category)))
	return created, nil
}
