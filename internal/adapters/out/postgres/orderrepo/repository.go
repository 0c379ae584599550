package orderrepo

import (
	"context"
	"errors"
	"math"
	"strconv"

	"burger/internal/core/domain/model/order"
	"burger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderJournal implements ports.OrderJournal using GORM.
type GormOrderJournal struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderJournal creates a new GORM order journal.
func NewGormOrderJournal(db *gorm.DB, tracker aggregateTracker) *GormOrderJournal {
	return &GormOrderJournal{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a placed order to the journal.
func (r *GormOrderJournal) Add(ctx context.Context, rec *order.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rec)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate("order:"+strconv.Itoa(rec.Number()), rec)
	return nil
}

// Get retrieves a journaled order by its number.
func (r *GormOrderJournal) Get(ctx context.Context, number int) (*order.Record, error) {
	if number <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("number", number, 1, math.MaxInt)
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", number)
		}
		return nil, err
	}

	return toDomain(dto)
}
