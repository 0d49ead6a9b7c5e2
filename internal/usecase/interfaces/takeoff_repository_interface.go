package interfaces

import (
	"context"

	"contractor_takeoff/internal/domain/entities"
)

//go:generate mockgen -source=takeoff_repository_interface.go -destination=mocks/mock_takeoff_repository.go -package=mock_interfaces

// ITakeoffRepository abstracts DynamoDB persistence for Takeoff.
//
// The takeoff service must be able to:
//   - create a takeoff on first save
//   - update it in place (same id) on later saves and override edits
//   - list the takeoffs of a customer
//   - discard a takeoff
//
// A missing takeoff is reported as a zero-value Takeoff and a nil error.
type ITakeoffRepository interface {
	Create(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error)
	Update(ctx context.Context, t entities.Takeoff) (entities.Takeoff, error)
	GetByID(ctx context.Context, id string) (entities.Takeoff, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Takeoff, error)
	Delete(ctx context.Context, id string) (bool, error)
}
