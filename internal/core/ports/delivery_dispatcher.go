package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// DeliveryDispatcher hands an accepted delivery order to the external courier
// service. The call is best effort relative to the status transition: it runs
// after the transition has been committed, and a failure is reported to the
// caller for logging, never rolled back into the order state.
type DeliveryDispatcher interface {
	// RequestDelivery asks the courier service to deliver the order.
	RequestDelivery(ctx context.Context, orderID kernel.UUID, deliveryAddress string, total kernel.Money) error
}
