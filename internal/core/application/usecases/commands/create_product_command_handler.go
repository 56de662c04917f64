package commands

import (
	"context"

	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// ErrNameContainsProfanity is returned when an externally screened name
// is rejected by the profanity service.
var ErrNameContainsProfanity = errs.NewValueIsInvalidError("name contains profanity")

// CreateProductCommandHandler handles the business logic for product registration.
// Screens the product name through the external profanity service before persisting.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	profanity  ports.ProfanityChecker
}

// NewCreateProductCommandHandler creates a handler for product registration.
// Requires a CatalogUoWFactory for transactional persistence and a
// ProfanityChecker for name screening.
func NewCreateProductCommandHandler(
	uowFactory CatalogUoWFactory,
	profanity ports.ProfanityChecker,
) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		profanity:  profanity,
	}
}

// Handle processes the product registration command.
// Rejects names flagged by the profanity service, then persists the new product.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	contains, err := h.profanity.ContainsProfanity(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if contains {
		return ErrNameContainsProfanity
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newProduct, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
