// Package ingredient provides the catalog side of the constructor: the immutable
// descriptors users pick from and the structural Kind each descriptor carries.
//
// The package includes:
//   - Ingredient: a read-only catalog entry (source id, name, type and display attributes)
//   - Kind: the structural classification, Base (exactly one per burger) or Filling
//
// Catalog types are the strings used by the backend ("bun", "main", "sauce");
// KindFromType maps them onto the two structural kinds.
package ingredient
