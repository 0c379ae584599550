// Package catalogrepo persists the ingredient catalog.
package catalogrepo

import (
	"burger/internal/core/domain/model/ingredient"
)

// IngredientDTO is one catalog entry keyed by its source id.
type IngredientDTO struct {
	SourceID      string `gorm:"type:varchar(64);primaryKey"`
	Name          string `gorm:"type:text;not null"`
	Type          string `gorm:"type:varchar(16);index;not null"`
	Price         int
	Calories      int
	Proteins      int
	Fat           int
	Carbohydrates int
	Image         string `gorm:"type:text"`
	ImageMobile   string `gorm:"type:text"`
	ImageLarge    string `gorm:"type:text"`
}

// TableName overrides GORM's default naming convention.
func (IngredientDTO) TableName() string {
	return "ingredients"
}

func fromDomain(ing ingredient.Ingredient) IngredientDTO {
	n := ing.Nutrition()
	img := ing.Images()

	return IngredientDTO{
		SourceID:      ing.SourceID(),
		Name:          ing.Name(),
		Type:          ing.Type(),
		Price:         ing.Price(),
		Calories:      n.Calories,
		Proteins:      n.Proteins,
		Fat:           n.Fat,
		Carbohydrates: n.Carbohydrates,
		Image:         img.Default,
		ImageMobile:   img.Mobile,
		ImageLarge:    img.Large,
	}
}

func toDomain(dto IngredientDTO) (ingredient.Ingredient, error) {
	return ingredient.NewIngredient(
		dto.SourceID,
		dto.Name,
		dto.Type,
		dto.Price,
		ingredient.Nutrition{
			Calories:      dto.Calories,
			Proteins:      dto.Proteins,
			Fat:           dto.Fat,
			Carbohydrates: dto.Carbohydrates,
		},
		ingredient.Images{
			Default: dto.Image,
			Mobile:  dto.ImageMobile,
			Large:   dto.ImageLarge,
		},
	)
}
