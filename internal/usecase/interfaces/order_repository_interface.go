package interfaces

import (
	"context"

	"payment_init/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

// IOrderRepository is the read side of the order store.
//
// GetByID returns a zero-value Order and a nil error when the order does not
// exist.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
