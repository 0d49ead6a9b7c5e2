package interfaces

import (
	"context"

	"contractor_takeoff/internal/domain/entities"
)

//go:generate mockgen -source=hardware_catalog_repository_interface.go -destination=mocks/mock_hardware_catalog_repository.go -package=mock_interfaces

// IHardwareCatalogRepository abstracts DynamoDB persistence of the hardware catalog.
//
// Items are filtered to a trade category before they reach the hardware engine.
type IHardwareCatalogRepository interface {
	ListByCategory(ctx context.Context, category entities.Trade) ([]entities.HardwareItem, error)
	GetByID(ctx context.Context, id string) (entities.HardwareItem, error)
	Create(ctx context.Context, item entities.HardwareItem) (entities.HardwareItem, error)
}
