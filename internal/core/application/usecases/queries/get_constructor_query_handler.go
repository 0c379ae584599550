package queries

import (
	"context"

	"burger/internal/core/application/store"
	"burger/internal/core/domain/model/assembly"
	"burger/internal/core/domain/model/order"
)

// SnapshotReader exposes the current store state. *store.Store satisfies it.
type SnapshotReader interface {
	Snapshot() store.Snapshot
}

// GetConstructorQueryHandler maps the store snapshot into the constructor view.
type GetConstructorQueryHandler struct {
	reader SnapshotReader
}

// NewGetConstructorQueryHandler creates the handler.
func NewGetConstructorQueryHandler(reader SnapshotReader) GetConstructorQueryHandler {
	return GetConstructorQueryHandler{reader: reader}
}

// Handle returns the constructor view.
func (h GetConstructorQueryHandler) Handle(
	_ context.Context,
	query GetConstructorQuery,
) (GetConstructorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetConstructorQueryResponse{}, err
	}

	return ConstructorResponseFromSnapshot(h.reader.Snapshot()), nil
}

// ConstructorResponseFromSnapshot maps an arbitrary snapshot, such as the one
// returned by a submit, into the constructor view.
func ConstructorResponseFromSnapshot(snap store.Snapshot) GetConstructorQueryResponse {
	resp := GetConstructorQueryResponse{
		Fillings:     make([]PlacementResponse, 0, len(snap.Fillings)),
		Status:       snap.Status.String(),
		IsSubmitting: snap.IsSubmitting,
		LastError:    snap.LastError,
	}

	if snap.Base != nil {
		base := placementResponse(*snap.Base)
		resp.Base = &base
	}
	for _, p := range snap.Fillings {
		resp.Fillings = append(resp.Fillings, placementResponse(p))
	}
	if snap.LastOrder != nil {
		resp.LastOrder = orderResponse(snap.LastOrder)
	}

	return resp
}

func placementResponse(p assembly.Placement) PlacementResponse {
	ing := p.Ingredient()
	return PlacementResponse{
		PlacementID:  p.ID(),
		IngredientID: ing.SourceID(),
		Name:         ing.Name(),
		Type:         ing.Type(),
		Price:        ing.Price(),
		Image:        ing.Images().Default,
		ImageMobile:  ing.Images().Mobile,
	}
}

func orderResponse(rec *order.Record) *OrderResponse {
	return &OrderResponse{
		Number:        rec.Number(),
		Name:          rec.Name(),
		Status:        rec.Status(),
		IngredientIDs: rec.IngredientIDs(),
	}
}
