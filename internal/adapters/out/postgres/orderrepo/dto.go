// Package orderrepo persists the journal of placed orders.
package orderrepo

import (
	"time"

	"burger/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// OrderDTO is one journaled order. The order number assigned by the backend
// is the primary key.
type OrderDTO struct {
	Number        int            `gorm:"primaryKey;autoIncrement:false"`
	ExternalID    string         `gorm:"type:varchar(64)"`
	Name          string         `gorm:"type:text"`
	Status        string         `gorm:"type:varchar(32)"`
	IngredientIDs pq.StringArray `gorm:"type:text[]"`
	PlacedAt      time.Time
	RemoteUpdated time.Time
	JournaledAt   time.Time `gorm:"autoCreateTime;index"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(rec *order.Record) OrderDTO {
	return OrderDTO{
		Number:        rec.Number(),
		ExternalID:    rec.ID(),
		Name:          rec.Name(),
		Status:        rec.Status(),
		IngredientIDs: pq.StringArray(rec.IngredientIDs()),
		PlacedAt:      rec.CreatedAt(),
		RemoteUpdated: rec.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Record, error) {
	return order.NewRecord(order.RecordParams{
		ID:            dto.ExternalID,
		Number:        dto.Number,
		Name:          dto.Name,
		Status:        dto.Status,
		IngredientIDs: []string(dto.IngredientIDs),
		CreatedAt:     dto.PlacedAt,
		UpdatedAt:     dto.RemoteUpdated,
	})
}
