package catalogrepo

import (
	"context"
	"errors"
	"strings"

	"burger/internal/core/domain/model/ingredient"
	"burger/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the ingredient or overwrites the row with the same source id.
func (r *GormCatalogRepository) Upsert(ctx context.Context, ing ingredient.Ingredient) error {
	if err := ing.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ing)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "source_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate("ingredient:"+ing.SourceID(), ing)
	return nil
}

// Get retrieves an ingredient by its source id.
func (r *GormCatalogRepository) Get(ctx context.Context, sourceID string) (ingredient.Ingredient, error) {
	sourceID = strings.TrimSpace(sourceID)
	if sourceID == "" {
		return ingredient.Ingredient{}, errs.NewValueIsRequiredError("sourceID")
	}

	var dto IngredientDTO
	if err := r.db.WithContext(ctx).First(&dto, "source_id = ?", sourceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ingredient.Ingredient{}, errs.NewObjectNotFoundError("ingredient", sourceID)
		}
		return ingredient.Ingredient{}, err
	}

	return toDomain(dto)
}

// GetAll returns the catalog ordered by type and source id.
func (r *GormCatalogRepository) GetAll(ctx context.Context) ([]ingredient.Ingredient, error) {
	var dtos []IngredientDTO
	if err := r.db.WithContext(ctx).Order("type").Order("source_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	ingredients := make([]ingredient.Ingredient, 0, len(dtos))
	for _, dto := range dtos {
		ing, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, nil
}
