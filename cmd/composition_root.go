package cmd

import (
	"log/slog"
	"time"

	httpserver "orderboard/internal/adapters/in/http"
	"orderboard/internal/adapters/in/ws"
	"orderboard/internal/adapters/out/memory"
	"orderboard/internal/adapters/out/postgres"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/services"
	"orderboard/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters to the use cases. The live board side
// (registry, hub, gateway) is built once and shared; the admin side hands out
// fresh unit of work instances per command.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry *memory.Registry
	hub      *ws.Hub
	policy   services.CancellationPolicy
}

// NewCompositionRoot builds the object graph from config.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   memory.NewRegistry(config.OrderCounterBase),
		hub:        ws.NewHub(logger),
		policy:     services.NewCancellationPolicy(time.Duration(config.CancellationWindowMinutes) * time.Minute),
	}
}

// CreateGateway builds the websocket gateway with the full board use case set.
func (c *CompositionRoot) CreateGateway() *ws.Gateway {
	updateStatus := commands.NewUpdateOrderStatusCommandHandler(c.registry, c.hub)

	useCases := ws.UseCases{
		PlaceOrder:         commands.NewPlaceOrderCommandHandler(c.registry, c.hub),
		UpdateStatus:       updateStatus,
		ArchiveOrder:       commands.NewArchiveOrderCommandHandler(updateStatus),
		DeleteOrder:        commands.NewDeleteOrderCommandHandler(c.registry, c.hub),
		CancelOrder:        commands.NewCancelOrderCommandHandler(c.registry, c.hub, c.policy, c.logger),
		ClearPartition:     commands.NewClearPartitionCommandHandler(c.registry, c.hub),
		GetOrderStatus:     queries.NewGetOrderStatusQueryHandler(c.registry),
		GetPartitionOrders: queries.NewGetPartitionOrdersQueryHandler(c.registry),
	}

	return ws.NewGateway(c.hub, useCases, c.logger)
}

// CreateHTTPServer builds the admin API server around the gateway.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	return httpserver.NewServer(
		c.CreateGateway(),
		c.CreateCreateMerchantCommandHandler(),
		c.CreateCreateProductCommandHandler(),
		c.CreateReportSalesCommandHandler(),
		queries.NewGetStorefrontQueryHandler(c.gormDB),
		queries.NewGetSalesReportsQueryHandler(c.gormDB),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireTrialsCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateCreateMerchantCommandHandler() commands.CreateMerchantCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMerchantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateReportSalesCommandHandler() commands.ReportSalesCommandHandler {
	var f commands.SalesUoWFactory = FuncSalesUoWFactory(func() commands.SalesUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportSalesCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireTrialsCommandHandler() commands.ExpireTrialsCommandHandler {
	var f commands.MerchantUoWFactory = FuncMerchantUoWFactory(func() commands.MerchantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireTrialsCommandHandler(f, c.logger)
}

type FuncMerchantUoWFactory func() commands.MerchantUoW

func (f FuncMerchantUoWFactory) Create() commands.MerchantUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncSalesUoWFactory func() commands.SalesUoW

func (f FuncSalesUoWFactory) Create() commands.SalesUoW {
	return f()
}
