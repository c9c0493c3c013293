package commands

import (
	"context"
	"strings"
	"time"

	"exportpro/internal/core/domain/model/intel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
	"exportpro/internal/pkg/errs"
)

// CreateOrderResult reports the outcome of the order intake pipeline.
// Once the order is persisted the pipeline never rolls back: failures in
// document generation or storefront notification are collected in Issues and
// the order stands.
type CreateOrderResult struct {
	OrderID     string
	OrderNumber string
	Documents   []string
	Issues      []string
}

// CreateOrderCommandHandler runs the order intake pipeline: assigns the next
// order number, attaches a profitability analysis, persists the order, then
// generates the initial document set and notifies the storefront.
type CreateOrderCommandHandler struct {
	uowFactory PipelineUoWFactory
	analyzer   services.ProfitAnalyzer
	resolver   services.RequirementResolver
	renderer   ports.DocumentRenderer
	website    ports.WebsiteGateway
	policy     order.NumberPolicy
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for the order intake
// pipeline.
func NewCreateOrderCommandHandler(
	uowFactory PipelineUoWFactory,
	resolver services.RequirementResolver,
	renderer ports.DocumentRenderer,
	website ports.WebsiteGateway,
	policy order.NumberPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		renderer:   renderer,
		website:    website,
		policy:     policy,
		now:        time.Now,
	}
}

// Handle processes the order creation command.
//
// Inside the transaction: number assignment, profitability analysis and
// persistence. After commit: document generation and storefront notification,
// whose failures are reported as issues rather than errors.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	client, err := order.NewClient(cmd.ClientCompany(), cmd.ClientContact(), cmd.ClientEmail())
	if err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]order.LineItem, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		item, err := order.NewLineItem(input.ProductID, input.Name, input.Quantity, input.UnitPrice, input.UnitCost)
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	now := h.now().UTC()
	var issues []string

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	latest, err := orderRepo.LatestNumber(ctx)
	if err != nil {
		return CreateOrderResult{}, errs.NewStoreError("order number lookup", err)
	}

	number, err := order.NextNumber(latest, now.Year(), h.policy)
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), number, client, items, cmd.PaymentTerms(), cmd.DeliveryTerms(), now)
	if err != nil {
		return CreateOrderResult{}, err
	}

	market, err := h.loadMarketData(ctx, uow.IntelRepository(), items)
	if err != nil {
		return CreateOrderResult{}, err
	}

	analysis, err := h.analyzer.Analyze(items, newOrder.Details().TotalValue(), market, now)
	if err == nil {
		err = newOrder.AttachAnalysis(analysis)
	}
	if err != nil {
		issues = append(issues, "profitability analysis failed: "+err.Error())
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, errs.NewStoreError("order insert", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, errs.NewStoreError("order commit", err)
	}

	documents, renderIssues := renderOrderDocuments(ctx, h.resolver, h.renderer, newOrder, now)
	issues = append(issues, renderIssues...)

	if err = h.website.NotifyOrderCreated(ctx, newOrder); err != nil {
		issues = append(issues, "website sync failed: "+err.Error())
	}

	return CreateOrderResult{
		OrderID:     newOrder.ID().String(),
		OrderNumber: newOrder.Number().String(),
		Documents:   documents,
		Issues:      issues,
	}, nil
}

// loadMarketData fetches the latest intelligence records for the ordered
// products. A store read failure aborts intake before anything is persisted;
// products without records simply have no entry in the returned map and the
// analysis degrades instead.
func (h *CreateOrderCommandHandler) loadMarketData(
	ctx context.Context,
	intelRepo ports.IntelRepository,
	items []order.LineItem,
) (map[string]*intel.Record, error) {
	productIDs := make([]string, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID())
	}

	market, err := intelRepo.LatestFor(ctx, productIDs)
	if err != nil {
		return nil, errs.NewAnalysisDataError(strings.Join(productIDs, ", "), err)
	}
	return market, nil
}
