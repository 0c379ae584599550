package cmd

import (
	"fmt"
	"log/slog"

	httpin "burger/internal/adapters/in/http"
	"burger/internal/adapters/out/catalogcache"
	"burger/internal/adapters/out/metrics"
	"burger/internal/adapters/out/orderapi"
	"burger/internal/adapters/out/postgres"
	"burger/internal/core/application/store"
	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/application/usecases/queries"
	"burger/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived dependencies of the service: one
// assembly store per process, the catalog cache in front of postgres and the
// metrics registry.
type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	registry   *prometheus.Registry
	metrics    *metrics.Collector
	catalog    *catalogcache.Cache
	store      *store.Store
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLogger(logger))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(registry)

	gateway, err := orderapi.NewClient(configs.OrderAPIURL,
		orderapi.WithTimeout(configs.OrderAPITimeout),
		orderapi.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("order api client: %w", err)
	}

	s, err := store.New(gateway,
		store.WithLogger(logger),
		store.WithObserver(collector),
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:    configs,
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		registry:   registry,
		metrics:    collector,
		catalog:    catalogcache.New(uowFactory.Create().CatalogRepository()),
		store:      s,
	}, nil
}

// Catalog returns the cache the command and query handlers read from.
func (c *CompositionRoot) Catalog() *catalogcache.Cache {
	return c.catalog
}

func (c *CompositionRoot) CreateAddIngredientCommandHandler() commands.AddIngredientCommandHandler {
	return commands.NewAddIngredientCommandHandler(c.catalog, c.store)
}

func (c *CompositionRoot) CreateRemoveIngredientCommandHandler() commands.RemoveIngredientCommandHandler {
	return commands.NewRemoveIngredientCommandHandler(c.store)
}

func (c *CompositionRoot) CreateMoveIngredientCommandHandler() commands.MoveIngredientCommandHandler {
	return commands.NewMoveIngredientCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.store, c.uowFactory, c.logger)
}

func (c *CompositionRoot) CreateDismissOrderResultCommandHandler() commands.DismissOrderResultCommandHandler {
	return commands.NewDismissOrderResultCommandHandler(c.store)
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	return commands.NewSeedCatalogCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetConstructorQueryHandler() queries.GetConstructorQueryHandler {
	return queries.NewGetConstructorQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

// CreateEcho builds the HTTP server with every route registered.
func (c *CompositionRoot) CreateEcho() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateAddIngredientCommandHandler(),
		c.CreateRemoveIngredientCommandHandler(),
		c.CreateMoveIngredientCommandHandler(),
		c.CreateSubmitOrderCommandHandler(),
		c.CreateDismissOrderResultCommandHandler(),
		c.CreateGetCatalogQueryHandler(),
		c.CreateGetConstructorQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.logger,
	)
	return httpin.NewEcho(server, c.registry)
}

// CreateJobManager builds the background jobs.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	refresh, err := jobs.NewCatalogRefreshJob(c.catalog, c.configs.CatalogRefreshSpec, c.logger, c.metrics)
	if err != nil {
		return nil, fmt.Errorf("catalog refresh job: %w", err)
	}
	return jobs.NewJobManager(c.logger, refresh), nil
}
