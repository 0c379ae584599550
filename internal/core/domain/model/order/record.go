package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through NewRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// RecordParams carries the fields the backend returns for a placed order.
// Only Number is mandatory.
type RecordParams struct {
	ID            string
	Number        int
	Name          string
	Status        string
	IngredientIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Record is the confirmation of a successfully placed order. The store keeps
// it as an opaque value until the user dismisses it.
type Record struct {
	id            string
	number        int
	name          string
	status        string
	ingredientIDs []string
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewRecord validates and builds an order record.
//
// Example:
//
//	rec, err := order.NewRecord(order.RecordParams{
//	    Number: 37865,
//	    Name:   "Краторный био-марсианский бургер",
//	})
func NewRecord(p RecordParams) (*Record, error) {
	if p.Number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order number is invalid",
			fmt.Errorf("%d is not greater than 0", p.Number),
		)
	}

	return &Record{
		id:            p.ID,
		number:        p.Number,
		name:          p.Name,
		status:        p.Status,
		ingredientIDs: slices.Clone(p.IngredientIDs),
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through NewRecord.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the backend identifier, which may be empty.
func (r *Record) ID() string {
	return r.id
}

// Number returns the display order number.
func (r *Record) Number() int {
	return r.number
}

// Name returns the backend-generated burger name.
func (r *Record) Name() string {
	return r.name
}

// Status returns the backend order status (e.g. "done").
func (r *Record) Status() string {
	return r.status
}

// IngredientIDs returns a copy of the submitted source ids.
func (r *Record) IngredientIDs() []string {
	return slices.Clone(r.ingredientIDs)
}

// CreatedAt returns the backend creation time.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the backend update time.
func (r *Record) UpdatedAt() time.Time {
	return r.updatedAt
}

// WithIngredientIDs returns a copy of the record carrying ids when the backend
// omitted them from its response.
func (r *Record) WithIngredientIDs(ids []string) *Record {
	c := *r
	if len(c.ingredientIDs) == 0 {
		c.ingredientIDs = slices.Clone(ids)
	}
	return &c
}
