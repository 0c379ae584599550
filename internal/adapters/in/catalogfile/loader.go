// Package catalogfile reads an ingredient catalog from a YAML or JSON file.
//
// The entries use the field names of the public ingredients API, so a saved
// response of GET /api/ingredients ({"success": true, "data": [...]}) is a
// valid catalog file as well as the YAML form:
//
//	ingredients:
//	  - _id: 643d69a5c3f7b9001cfa093c
//	    name: Краторная булка N-200i
//	    type: bun
//	    price: 1255
package catalogfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"burger/internal/core/domain/model/ingredient"

	"gopkg.in/yaml.v3"
)

// ErrCatalogIsEmpty is returned for a file without a single ingredient.
var ErrCatalogIsEmpty = errors.New("catalog file has no ingredients")

// Format selects the decoder.
type Format int

const (
	YAML Format = iota
	JSON
)

// FormatFromPath picks JSON for a .json extension and YAML otherwise.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

type entry struct {
	ID            string `yaml:"_id" json:"_id"`
	Name          string `yaml:"name" json:"name"`
	Type          string `yaml:"type" json:"type"`
	Price         int    `yaml:"price" json:"price"`
	Calories      int    `yaml:"calories" json:"calories"`
	Proteins      int    `yaml:"proteins" json:"proteins"`
	Fat           int    `yaml:"fat" json:"fat"`
	Carbohydrates int    `yaml:"carbohydrates" json:"carbohydrates"`
	Image         string `yaml:"image" json:"image"`
	ImageMobile   string `yaml:"image_mobile" json:"image_mobile"`
	ImageLarge    string `yaml:"image_large" json:"image_large"`
}

type document struct {
	Ingredients []entry `yaml:"ingredients" json:"ingredients"`
	Data        []entry `yaml:"data" json:"data"`
}

// LoadFile reads and validates the catalog at path.
func LoadFile(path string) ([]ingredient.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Load(f, FormatFromPath(path))
}

// Load decodes a catalog document. Every entry is validated; all invalid
// entries are reported together. Duplicate ids keep the last entry.
func Load(r io.Reader, format Format) ([]ingredient.Ingredient, error) {
	var doc document

	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse catalog json: %w", err)
		}
	default:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
		}
	}

	entries := append(doc.Ingredients, doc.Data...)
	if len(entries) == 0 {
		return nil, ErrCatalogIsEmpty
	}

	index := make(map[string]int, len(entries))
	ingredients := make([]ingredient.Ingredient, 0, len(entries))
	var errs []error

	for i, e := range entries {
		ing, err := e.toDomain()
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i, e.ID, err))
			continue
		}
		if pos, ok := index[ing.SourceID()]; ok {
			ingredients[pos] = ing
			continue
		}
		index[ing.SourceID()] = len(ingredients)
		ingredients = append(ingredients, ing)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return ingredients, nil
}

func (e entry) toDomain() (ingredient.Ingredient, error) {
	return ingredient.NewIngredient(
		e.ID,
		e.Name,
		e.Type,
		e.Price,
		ingredient.Nutrition{
			Calories:      e.Calories,
			Proteins:      e.Proteins,
			Fat:           e.Fat,
			Carbohydrates: e.Carbohydrates,
		},
		ingredient.Images{
			Default: e.Image,
			Mobile:  e.ImageMobile,
			Large:   e.ImageLarge,
		},
	)
}
