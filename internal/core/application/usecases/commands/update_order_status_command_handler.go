package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles order status changes, including
// cancellation (a change to the Cancelled status).
// The aggregate enforces the transition rules; the handler only loads,
// applies, and persists.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Confirmed)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the order, applies the transition (illegal transitions surface
// order.ErrInvalidStatusTransition), and persists the new status. A persisted
// write that touches zero rows means a concurrent writer got there first;
// that is not an error, but the order is handed back exactly as it was
// loaded, without the local transition applied.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	loadedStatus := aggregate.Status()
	loadedUpdatedAt := aggregate.UpdatedAt()

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	modified, err := orderRepo.UpdateStatus(ctx, aggregate.ID(), aggregate.Status(), aggregate.UpdatedAt())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if !modified {
		return order.RestoreOrder(
			aggregate.ID(),
			aggregate.Customer(),
			aggregate.Items(),
			loadedStatus,
			aggregate.Notes(),
			aggregate.DeliveryAddress(),
			aggregate.DeliveryTime(),
			aggregate.CreatedAt(),
			loadedUpdatedAt,
		)
	}

	return aggregate, nil
}
