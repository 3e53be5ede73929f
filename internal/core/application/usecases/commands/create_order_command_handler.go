package commands

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/order"
)

// ErrProductUnavailable is returned when an ordered product exists but is
// currently switched off the menu.
var ErrProductUnavailable = errors.New("product is not available")

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves requested products, snapshots their names and prices into line
// items, and persists the new order in "new" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customer, items, "", "", nil)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// placed is now persisted and ready for confirmation
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because creation reads products and writes orders in
// one transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Every requested product must exist and be available; otherwise nothing is
// persisted. Line items capture the product's name and price at this moment,
// so later menu edits do not rewrite order history.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	productRepo := uow.ProductRepository()
	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, request := range cmd.Items() {
		product, err := productRepo.Get(ctx, request.ProductID())
		if err != nil {
			return nil, err
		}

		if !product.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, product.Name())
		}

		item, err := order.NewLineItem(
			product.ID(),
			product.Name(),
			product.Price(),
			request.Quantity(),
			request.SpecialRequests(),
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Customer(),
		items,
		cmd.Notes(),
		cmd.DeliveryAddress(),
		cmd.DeliveryTime(),
	)
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
