package http

import (
	"time"

	"burger/internal/core/application/usecases/queries"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewPlacement is the body of POST /api/v1/constructor/ingredients.
type NewPlacement struct {
	IngredientID string `json:"ingredientId"`
}

type Ingredient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Price         int    `json:"price"`
	Calories      int    `json:"calories"`
	Proteins      int    `json:"proteins"`
	Fat           int    `json:"fat"`
	Carbohydrates int    `json:"carbohydrates"`
	Image         string `json:"image,omitempty"`
	ImageMobile   string `json:"imageMobile,omitempty"`
	ImageLarge    string `json:"imageLarge,omitempty"`
}

type IngredientGroup struct {
	Type        string       `json:"type"`
	Ingredients []Ingredient `json:"ingredients"`
}

type Catalog struct {
	Groups []IngredientGroup `json:"groups"`
}

type Placement struct {
	ID           string `json:"id"`
	IngredientID string `json:"ingredientId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Price        int    `json:"price"`
	Image        string `json:"image,omitempty"`
	ImageMobile  string `json:"imageMobile,omitempty"`
}

type Order struct {
	Number      int      `json:"number"`
	Name        string   `json:"name,omitempty"`
	Status      string   `json:"status,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// Constructor is the burger under construction plus the submit status.
type Constructor struct {
	Base         *Placement  `json:"base,omitempty"`
	Fillings     []Placement `json:"fillings"`
	Status       string      `json:"status"`
	IsSubmitting bool        `json:"isSubmitting"`
	LastError    string      `json:"lastError,omitempty"`
	LastOrder    *Order      `json:"lastOrder,omitempty"`
}

type JournaledOrder struct {
	Number      int       `json:"number"`
	Name        string    `json:"name,omitempty"`
	Ingredients []string  `json:"ingredients"`
	PlacedAt    time.Time `json:"placedAt"`
	JournaledAt time.Time `json:"journaledAt"`
}

func catalogFromQuery(resp queries.GetCatalogQueryResponse) Catalog {
	groups := make([]IngredientGroup, len(resp.Groups))
	for i, g := range resp.Groups {
		items := make([]Ingredient, len(g.Ingredients))
		for j, ing := range g.Ingredients {
			items[j] = Ingredient{
				ID:            ing.ID,
				Name:          ing.Name,
				Type:          ing.Type,
				Price:         ing.Price,
				Calories:      ing.Calories,
				Proteins:      ing.Proteins,
				Fat:           ing.Fat,
				Carbohydrates: ing.Carbohydrates,
				Image:         ing.Image,
				ImageMobile:   ing.ImageMobile,
				ImageLarge:    ing.ImageLarge,
			}
		}
		groups[i] = IngredientGroup{Type: g.Type, Ingredients: items}
	}
	return Catalog{Groups: groups}
}

func constructorFromQuery(resp queries.GetConstructorQueryResponse) Constructor {
	view := Constructor{
		Fillings:     make([]Placement, len(resp.Fillings)),
		Status:       resp.Status,
		IsSubmitting: resp.IsSubmitting,
		LastError:    resp.LastError,
	}

	if resp.Base != nil {
		base := placementFromQuery(*resp.Base)
		view.Base = &base
	}
	for i, p := range resp.Fillings {
		view.Fillings[i] = placementFromQuery(p)
	}
	if resp.LastOrder != nil {
		view.LastOrder = &Order{
			Number:      resp.LastOrder.Number,
			Name:        resp.LastOrder.Name,
			Status:      resp.LastOrder.Status,
			Ingredients: resp.LastOrder.IngredientIDs,
		}
	}

	return view
}

func placementFromQuery(p queries.PlacementResponse) Placement {
	return Placement{
		ID:           p.PlacementID,
		IngredientID: p.IngredientID,
		Name:         p.Name,
		Type:         p.Type,
		Price:        p.Price,
		Image:        p.Image,
		ImageMobile:  p.ImageMobile,
	}
}

func journaledOrdersFromQuery(resp []queries.GetOrderHistoryQueryResponse) []JournaledOrder {
	orders := make([]JournaledOrder, len(resp))
	for i, o := range resp {
		ids := o.IngredientIDs
		if ids == nil {
			ids = []string{}
		}
		orders[i] = JournaledOrder{
			Number:      o.Number,
			Name:        o.Name,
			Ingredients: ids,
			PlacedAt:    o.PlacedAt,
			JournaledAt: o.JournaledAt,
		}
	}
	return orders
}
