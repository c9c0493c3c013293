package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"exportpro/internal/core/application/usecases/commands"
	"exportpro/internal/core/application/usecases/queries"
	"exportpro/internal/core/domain/model/kernel"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/model/supplier"
	"exportpro/internal/pkg/errs"
)

// RequestValidator plugs go-playground/validator into echo's binding flow.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler
	generateDocumentsHandler  commands.GenerateOrderDocumentsCommandHandler
	createSupplierHandler     commands.CreateSupplierCommandHandler
	updateSupplierHandler     commands.UpdateSupplierCommandHandler
	createProductHandler      commands.CreateProductCommandHandler

	// Query handlers
	getOrdersHandler          queries.GetOrdersQueryHandler
	getSuppliersHandler       queries.GetSuppliersQueryHandler
	getProductsHandler        queries.GetProductsQueryHandler
	analyzeOrderProfitHandler queries.AnalyzeOrderProfitQueryHandler
	marketIntelligenceHandler queries.GetMarketIntelligenceQueryHandler
	pricePredictionHandler    queries.GetPricePredictionQueryHandler
	arbitrageHandler          queries.GetArbitrageQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	generateDocumentsHandler commands.GenerateOrderDocumentsCommandHandler,
	createSupplierHandler commands.CreateSupplierCommandHandler,
	updateSupplierHandler commands.UpdateSupplierCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getSuppliersHandler queries.GetSuppliersQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	analyzeOrderProfitHandler queries.AnalyzeOrderProfitQueryHandler,
	marketIntelligenceHandler queries.GetMarketIntelligenceQueryHandler,
	pricePredictionHandler queries.GetPricePredictionQueryHandler,
	arbitrageHandler queries.GetArbitrageQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		advanceOrderStatusHandler: advanceOrderStatusHandler,
		generateDocumentsHandler:  generateDocumentsHandler,
		createSupplierHandler:     createSupplierHandler,
		updateSupplierHandler:     updateSupplierHandler,
		createProductHandler:      createProductHandler,
		getOrdersHandler:          getOrdersHandler,
		getSuppliersHandler:       getSuppliersHandler,
		getProductsHandler:        getProductsHandler,
		analyzeOrderProfitHandler: analyzeOrderProfitHandler,
		marketIntelligenceHandler: marketIntelligenceHandler,
		pricePredictionHandler:    pricePredictionHandler,
		arbitrageHandler:          arbitrageHandler,
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/:id/status", s.AdvanceOrderStatus)
	api.POST("/orders/:id/documents", s.GenerateOrderDocuments)
	api.POST("/orders/analyze", s.AnalyzeOrderProfit)
	api.POST("/suppliers", s.CreateSupplier)
	api.GET("/suppliers", s.GetSuppliers)
	api.PUT("/suppliers/:id", s.UpdateSupplier)
	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.GetProducts)
	api.GET("/market-intelligence/:productId", s.GetMarketIntelligence)
	api.GET("/predictions/:productId", s.GetPricePrediction)
	api.GET("/arbitrage", s.GetArbitrage)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - runs the order intake pipeline.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			UnitCost:  item.UnitCost,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		req.Client.CompanyName, req.Client.ContactPerson, req.Client.Email,
		items,
		req.PaymentTerms, req.DeliveryTerms,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Documents:   result.Documents,
		Issues:      result.Issues,
	})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by ?status=.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery(order.Status(ctx.QueryParam("status")))

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve orders")
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryResponse{
			ID:            o.ID,
			OrderNumber:   o.OrderNumber,
			ClientCompany: o.ClientCompany,
			Status:        o.Status,
			TotalValue:    o.TotalValue,
			Currency:      o.Currency,
			CreatedAt:     o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AdvanceOrderStatusRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, order.Status(req.Status), req.Note)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	result, err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, AdvanceOrderStatusResponse{
		Status:    result.Status.String(),
		Documents: result.Documents,
		Issues:    result.Issues,
	})
}

// GenerateOrderDocuments handles POST /api/v1/orders/:id/documents -
// regenerates the document package for an order.
func (s *Server) GenerateOrderDocuments(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewGenerateOrderDocumentsCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid document request: "+err.Error())
	}

	result, err := s.generateDocumentsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to generate documents")
	}

	return ctx.JSON(http.StatusOK, GenerateDocumentsResponse{
		Documents: result.Documents,
		Issues:    result.Issues,
	})
}

// AnalyzeOrderProfit handles POST /api/v1/orders/analyze - what-if analysis
// of a prospective order, nothing is persisted.
func (s *Server) AnalyzeOrderProfit(ctx echo.Context) error {
	var req AnalyzeOrderRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	items := make([]queries.AnalysisItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, queries.AnalysisItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			UnitCost:  item.UnitCost,
		})
	}

	query, err := queries.NewAnalyzeOrderProfitQuery(items)
	if err != nil {
		return badRequest(ctx, "Invalid analysis data: "+err.Error())
	}

	analysis, err := s.analyzeOrderProfitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to analyze order")
	}

	return ctx.JSON(http.StatusOK, AnalyzeOrderResponse{
		TotalValue:           analysis.TotalValue,
		PredictedProfit:      analysis.PredictedProfit,
		ProfitMargin:         analysis.ProfitMargin,
		RiskScore:            analysis.RiskScore,
		Confidence:           analysis.Confidence,
		OptimalShipping:      analysis.OptimalShipping,
		RecommendedInsurance: analysis.RecommendedInsurance,
	})
}

// CreateSupplier handles POST /api/v1/suppliers.
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var req SupplierRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	supplierID := kernel.NewUUID()
	cmd, err := commands.NewCreateSupplierCommand(
		supplierID,
		req.Name, req.Kind,
		supplierLocation(req.Location),
		supplierContact(req.Contact),
		supplierMetrics(req.Metrics),
	)
	if err != nil {
		return badRequest(ctx, "Invalid supplier data: "+err.Error())
	}

	if err := s.createSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to create supplier")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: supplierID.String()})
}

// GetSuppliers handles GET /api/v1/suppliers - lists suppliers sorted by
// reliability, optionally filtered by ?kind=.
func (s *Server) GetSuppliers(ctx echo.Context) error {
	query := queries.NewGetSuppliersQuery(ctx.QueryParam("kind"))

	suppliers, err := s.getSuppliersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve suppliers")
	}

	response := make([]SupplierSummaryResponse, len(suppliers))
	for i, sup := range suppliers {
		response[i] = SupplierSummaryResponse{
			ID:               sup.ID,
			Name:             sup.Name,
			Kind:             sup.Kind,
			State:            sup.State,
			District:         sup.District,
			ReliabilityScore: sup.ReliabilityScore,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id.
func (s *Server) UpdateSupplier(ctx echo.Context) error {
	supplierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid supplier id")
	}

	var req SupplierRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateSupplierCommand(
		supplierID,
		req.Name, req.Kind,
		supplierLocation(req.Location),
		supplierContact(req.Contact),
		supplierMetrics(req.Metrics),
	)
	if err != nil {
		return badRequest(ctx, "Invalid supplier data: "+err.Error())
	}

	if err := s.updateSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to update supplier")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		req.Name, req.Category,
		req.UnitPrice, req.UnitCost,
		req.Inventory,
	)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err := s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to create product")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// GetProducts handles GET /api/v1/products - lists available products,
// optionally filtered by ?category=.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetProductsQuery(ctx.QueryParam("category"))

	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve products")
	}

	response := make([]ProductSummaryResponse, len(products))
	for i, p := range products {
		response[i] = ProductSummaryResponse{
			ID:        p.ID,
			Name:      p.Name,
			Category:  p.Category,
			UnitPrice: p.UnitPrice,
			Inventory: p.Inventory,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMarketIntelligence handles GET /api/v1/market-intelligence/:productId.
func (s *Server) GetMarketIntelligence(ctx echo.Context) error {
	query, err := queries.NewGetMarketIntelligenceQuery(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	intel, err := s.marketIntelligenceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve market intelligence")
	}

	return ctx.JSON(http.StatusOK, MarketIntelligenceResponse{
		ProductID:       intel.ProductID,
		Fresh:           intel.Fresh,
		ObservedAt:      intel.ObservedAt,
		RiskFactors:     intel.RiskFactors,
		PriceVolatility: intel.PriceVolatility,
		Arbitrage:       intel.Arbitrage,
	})
}

// GetPricePrediction handles GET /api/v1/predictions/:productId.
func (s *Server) GetPricePrediction(ctx echo.Context) error {
	query, err := queries.NewGetPricePredictionQuery(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	prediction, err := s.pricePredictionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve price prediction")
	}

	return ctx.JSON(http.StatusOK, PricePredictionResponse{
		ProductID:      prediction.ProductID,
		Fresh:          prediction.Fresh,
		ObservedAt:     prediction.ObservedAt,
		PredictedPrice: prediction.PredictedPrice,
		Confidence:     prediction.Confidence,
	})
}

// GetArbitrage handles GET /api/v1/arbitrage - lists recent arbitrage
// opportunities.
func (s *Server) GetArbitrage(ctx echo.Context) error {
	opportunities, err := s.arbitrageHandler.Handle(ctx.Request().Context(), queries.NewGetArbitrageQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve arbitrage opportunities")
	}

	response := make([]ArbitrageResponse, len(opportunities))
	for i, opp := range opportunities {
		response[i] = ArbitrageResponse{
			ProductID:   opp.ProductID,
			ObservedAt:  opp.ObservedAt,
			Opportunity: opp.Opportunity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func supplierLocation(req SupplierLocationRequest) supplier.Location {
	return supplier.Location{State: req.State, District: req.District, Pincode: req.Pincode}
}

func supplierContact(req SupplierContactRequest) supplier.Contact {
	return supplier.Contact{
		PrimaryContact:         req.PrimaryContact,
		Phone:                  req.Phone,
		Email:                  req.Email,
		PreferredCommunication: req.PreferredCommunication,
	}
}

func supplierMetrics(req SupplierMetricsRequest) supplier.PerformanceMetrics {
	return supplier.PerformanceMetrics{
		ReliabilityScore:            req.ReliabilityScore,
		QualityConsistency:          req.QualityConsistency,
		DeliveryTimeliness:          req.DeliveryTimeliness,
		PriceCompetitiveness:        req.PriceCompetitiveness,
		CommunicationResponsiveness: req.CommunicationResponsiveness,
	}
}

// bind decodes and validates the request body, replying 400 on failure.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(req); err != nil {
		return badRequest(ctx, "Invalid request body: "+err.Error())
	}
	return nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain errors to HTTP codes.
func errorResponse(ctx echo.Context, err error, message string) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrLifecycleDenied):
		code = http.StatusConflict
	}
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message + ": " + err.Error(),
	})
}
