// Package postgres provides the GORM-based Unit of Work over the catalog and
// the order journal.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	for _, ing := range catalog {
//	    if err := uow.CatalogRepository().Upsert(ctx, ing); err != nil {
//	        return err
//	    }
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction and must not be shared
// between goroutines.
package postgres

import (
	"context"
	"io"
	"log/slog"

	"burger/internal/adapters/out/postgres/catalogrepo"
	"burger/internal/adapters/out/postgres/orderrepo"
	"burger/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithLogger reports committed transactions to logger.
func WithLogger(logger *slog.Logger) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.logger = logger
	}
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:     db,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "unit_of_work")

	return f
}

// Create produces a fresh UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction permanent and logs the keys of the aggregates
// it wrote. Returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return err
	}

	uow.logger.DebugContext(ctx, "transaction committed", "aggregates", uow.trackedKeys())
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction, so a deferred Rollback is harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// CatalogRepository returns a catalog repository bound to the active
// transaction, or to the connection pool outside of one.
func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn(), uow)
}

// OrderJournal returns an order journal bound to the active transaction, or
// to the connection pool outside of one.
func (uow *GormUnitOfWork) OrderJournal() ports.OrderJournal {
	return orderrepo.NewGormOrderJournal(uow.conn(), uow)
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// trackedKeys lists the keys of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) trackedKeys() []string {
	keys := make([]string, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		keys = append(keys, t.Key)
	}
	return keys
}

// Migrate creates or updates the tables used by the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&catalogrepo.IngredientDTO{}, &orderrepo.OrderDTO{})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
