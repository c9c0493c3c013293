package cmd

import (
	"gorm.io/gorm"

	"exportpro/internal/adapters/out/docrender"
	"exportpro/internal/adapters/out/postgres"
	"exportpro/internal/adapters/out/postgres/intelrepo"
	"exportpro/internal/adapters/out/website"
	"exportpro/internal/core/application/usecases/commands"
	"exportpro/internal/core/application/usecases/queries"
	"exportpro/internal/core/domain/model/order"
	"exportpro/internal/core/domain/services"
	"exportpro/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   services.RequirementResolver
	renderer   ports.DocumentRenderer
	website    ports.WebsiteGateway
	policy     order.NumberPolicy
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	renderer, err := docrender.NewHTMLRenderer(configs.DocumentsDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	var gateway ports.WebsiteGateway = website.NoopGateway{}
	if configs.KafkaHost != "" {
		gateway, err = website.NewKafkaGateway([]string{configs.KafkaHost}, configs.KafkaStorefrontTopic)
		if err != nil {
			return CompositionRoot{}, err
		}
	}

	policy := order.ContinueAcrossYears
	if configs.OrderNumberPolicy == "reset_yearly" {
		policy = order.ResetEachYear
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   services.NewRequirementResolver(),
		renderer:   renderer,
		website:    gateway,
		policy:     policy,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PipelineUoWFactory = FuncPipelineUoWFactory(func() commands.PipelineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.resolver, c.renderer, c.website, c.policy)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.PipelineUoWFactory = FuncPipelineUoWFactory(func() commands.PipelineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f, c.resolver, c.renderer, c.website)
}

func (c *CompositionRoot) CreateGenerateOrderDocumentsCommandHandler() commands.GenerateOrderDocumentsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGenerateOrderDocumentsCommandHandler(f, c.resolver, c.renderer)
}

func (c *CompositionRoot) CreateSweepDocumentationCommandHandler() commands.SweepDocumentationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepDocumentationCommandHandler(f, c.resolver, c.renderer)
}

func (c *CompositionRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateSupplierCommandHandler() commands.UpdateSupplierCommandHandler {
	var f commands.SupplierUoWFactory = FuncSupplierUoWFactory(func() commands.SupplierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSupplierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSuppliersQueryHandler() queries.GetSuppliersQueryHandler {
	return queries.NewGetSuppliersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAnalyzeOrderProfitQueryHandler() queries.AnalyzeOrderProfitQueryHandler {
	return queries.NewAnalyzeOrderProfitQueryHandler(c.intelRepository())
}

func (c *CompositionRoot) CreateGetMarketIntelligenceQueryHandler() queries.GetMarketIntelligenceQueryHandler {
	return queries.NewGetMarketIntelligenceQueryHandler(c.intelRepository())
}

func (c *CompositionRoot) CreateGetPricePredictionQueryHandler() queries.GetPricePredictionQueryHandler {
	return queries.NewGetPricePredictionQueryHandler(c.intelRepository())
}

func (c *CompositionRoot) CreateGetArbitrageQueryHandler() queries.GetArbitrageQueryHandler {
	return queries.NewGetArbitrageQueryHandler(c.intelRepository())
}

func (c *CompositionRoot) intelRepository() ports.IntelRepository {
	return intelrepo.NewGormIntelRepository(c.gormDB)
}

type FuncPipelineUoWFactory func() commands.PipelineUoW

func (f FuncPipelineUoWFactory) Create() commands.PipelineUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSupplierUoWFactory func() commands.SupplierUoW

func (f FuncSupplierUoWFactory) Create() commands.SupplierUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}
