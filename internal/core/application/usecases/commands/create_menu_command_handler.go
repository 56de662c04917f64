package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/core/ports"
)

// CreateMenuCommandHandler handles the business logic for menu composition.
// Resolves every referenced product, snapshots current product prices into the
// menu lines and enforces the menu price invariant via the domain constructor.
type CreateMenuCommandHandler struct {
	uowFactory CatalogUoWFactory
	profanity  ports.ProfanityChecker
}

// NewCreateMenuCommandHandler creates a handler for menu composition.
func NewCreateMenuCommandHandler(
	uowFactory CatalogUoWFactory,
	profanity ports.ProfanityChecker,
) CreateMenuCommandHandler {
	return CreateMenuCommandHandler{
		uowFactory: uowFactory,
		profanity:  profanity,
	}
}

// Handle processes the menu composition command.
// Products are resolved as a batch first, then re-validated individually so a
// missing reference surfaces as a not-found error for that exact product.
func (h CreateMenuCommandHandler) Handle(ctx context.Context, cmd CreateMenuCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuGroupRepository().Get(ctx, cmd.MenuGroupID()); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()

	productIDs := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := productRepo.GetAllByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	byID := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	lines := make([]menu.MenuLine, 0, len(cmd.Lines()))
	for _, item := range cmd.Lines() {
		p, ok := byID[item.ProductID]
		if !ok {
			if p, err = productRepo.Get(ctx, item.ProductID); err != nil {
				return err
			}
		}

		line, err := menu.NewMenuLine(item.ProductID, p.Price(), item.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	contains, err := h.profanity.ContainsProfanity(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if contains {
		return ErrNameContainsProfanity
	}

	newMenu, err := menu.NewMenu(cmd.MenuID(), cmd.Name(), cmd.Price(), cmd.MenuGroupID(), lines)
	if err != nil {
		return err
	}

	if err = uow.MenuRepository().Add(ctx, newMenu); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
