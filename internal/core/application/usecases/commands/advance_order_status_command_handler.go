package commands

import (
	"context"
	"fmt"
	"time"

	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
	"exportpro/internal/pkg/errs"
)

// AdvanceOrderStatusResult reports the outcome of a status change and its
// side effects. The status change itself is transactional; side effects run
// after commit and report failures as issues.
type AdvanceOrderStatusResult struct {
	Status    order.Status
	Documents []string
	Issues    []string
}

// AdvanceOrderStatusCommandHandler appends a status change to an order's
// history and runs the status-specific side effects: entering documentation
// regenerates the document package, completion withdraws sold inventory and
// notifies the storefront.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory PipelineUoWFactory
	resolver   services.RequirementResolver
	renderer   ports.DocumentRenderer
	website    ports.WebsiteGateway
	now        func() time.Time
}

// NewAdvanceOrderStatusCommandHandler creates a handler for order status
// changes.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory PipelineUoWFactory,
	resolver services.RequirementResolver,
	renderer ports.DocumentRenderer,
	website ports.WebsiteGateway,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		renderer:   renderer,
		website:    website,
		now:        time.Now,
	}
}

// Handle processes the status change command.
func (h *AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (AdvanceOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderStatusResult{}, err
	}

	now := h.now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceOrderStatusResult{}, err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), cmd.Note(), now); err != nil {
		return AdvanceOrderStatusResult{}, err
	}

	// ChangeStatus appended exactly one entry; persist it without rewriting
	// the rest of the aggregate.
	history := aggregate.History()
	if err = orderRepo.AppendStatus(ctx, aggregate.ID(), history[len(history)-1]); err != nil {
		return AdvanceOrderStatusResult{}, errs.NewStoreError("order status update", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderStatusResult{}, errs.NewStoreError("order status commit", err)
	}

	result := AdvanceOrderStatusResult{Status: aggregate.Status()}

	if cmd.Status().TriggersDocumentation() {
		documents, issues := renderOrderDocuments(ctx, h.resolver, h.renderer, aggregate, now)
		result.Documents = documents
		result.Issues = append(result.Issues, issues...)
	}

	if cmd.Status().TriggersInventorySync() {
		result.Issues = append(result.Issues, h.syncInventory(ctx, aggregate)...)
	}

	return result, nil
}

// syncInventory withdraws the sold quantities from the catalog and announces
// the change to the storefront. The order's status change already stands, so
// every failure here is an issue rather than an error.
func (h *AdvanceOrderStatusCommandHandler) syncInventory(ctx context.Context, aggregate *order.Order) []string {
	var issues []string

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return append(issues, "inventory sync failed: "+err.Error())
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	for _, item := range aggregate.Items() {
		productID, err := kernel.UUIDFromString(item.ProductID())
		if err != nil {
			issues = append(issues, fmt.Sprintf("inventory sync skipped %s: %s", item.ProductID(), err))
			continue
		}

		catalogProduct, err := productRepo.Get(ctx, productID)
		if err != nil {
			issues = append(issues, fmt.Sprintf("inventory sync skipped %s: %s", item.ProductID(), err))
			continue
		}

		if err = catalogProduct.Reserve(item.Quantity()); err != nil {
			issues = append(issues, fmt.Sprintf("inventory withdrawal failed for %s: %s", item.ProductID(), err))
			continue
		}

		if err = productRepo.Update(ctx, catalogProduct); err != nil {
			issues = append(issues, fmt.Sprintf("inventory update failed for %s: %s", item.ProductID(), err))
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return append(issues, "inventory sync commit failed: "+err.Error())
	}

	if err := h.website.NotifyInventoryChange(ctx, aggregate); err != nil {
		issues = append(issues, "website inventory sync failed: "+err.Error())
	}
	return issues
}
