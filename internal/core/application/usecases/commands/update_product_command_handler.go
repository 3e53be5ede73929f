package commands

import (
	"context"

	"restaurant/internal/core/domain/model/product"
)

// UpdateProductCommandHandler handles partial edits of menu products:
// renaming, repricing, recategorizing, and toggling availability.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product update operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// Loads the product, applies only the fields the command carries, and persists
// the result. Missing products surface as errs.ObjectNotFoundError from the
// repository.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
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
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = applyProductPatch(aggregate, cmd); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func applyProductPatch(aggregate *product.Product, cmd UpdateProductCommand) error {
	if cmd.Name() != nil {
		if err := aggregate.Rename(*cmd.Name()); err != nil {
			return err
		}
	}

	if cmd.Price() != nil {
		if err := aggregate.ChangePrice(*cmd.Price()); err != nil {
			return err
		}
	}

	if cmd.Category() != nil {
		if err := aggregate.ChangeCategory(*cmd.Category()); err != nil {
			return err
		}
	}

	if cmd.Description() != nil {
		aggregate.ChangeDescription(*cmd.Description())
	}

	if cmd.IsAvailable() != nil {
		aggregate.SetAvailability(*cmd.IsAvailable())
	}

	return nil
}
