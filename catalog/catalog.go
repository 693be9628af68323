// Package catalog expone el catálogo estático de la distribuidora.
// Los datos se compilan en el binario y son de solo lectura; el carrito
// copia lo que necesita al momento de agregar un producto.
package catalog

import "github.com/Ubarrionuevo/distribuidora-leo/models"

// NotFoundCategory is the placeholder returned for unknown slugs so a
// bad navigation never fails the page.
var NotFoundCategory = models.Category{
	ID:   0,
	Name: "Categoría no encontrada",
	Slug: "",
}

type Catalog struct {
	categories []models.Category
	products   []models.Product

	categoryBySlug map[string]models.Category
	productByID    map[int64]models.Product
}

// New builds the lookup indexes over the embedded tables.
func New() *Catalog {
	c := &Catalog{
		categories:     defaultCategories,
		products:       defaultProducts,
		categoryBySlug: make(map[string]models.Category, len(defaultCategories)),
		productByID:    make(map[int64]models.Product, len(defaultProducts)),
	}
	for _, cat := range c.categories {
		c.categoryBySlug[cat.Slug] = cat
	}
	for _, p := range c.products {
		c.productByID[p.ID] = p
	}
	return c
}

// Categories returns all categories in display order.
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryBySlug resolves a slug, falling back to NotFoundCategory.
func (c *Catalog) CategoryBySlug(slug string) models.Category {
	if cat, ok := c.categoryBySlug[slug]; ok {
		return cat
	}
	return NotFoundCategory
}

// HasCategory reports whether the slug exists in the catalog.
func (c *Catalog) HasCategory(slug string) bool {
	_, ok := c.categoryBySlug[slug]
	return ok
}

// ProductByID looks up a product by its identifier.
func (c *Catalog) ProductByID(id int64) (models.Product, bool) {
	p, ok := c.productByID[id]
	return p, ok
}

// ProductsByCategory returns the products of a category in catalog order.
// An unknown slug yields an empty list.
func (c *Catalog) ProductsByCategory(slug string) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.CategorySlug == slug {
			out = append(out, p)
		}
	}
	return out
}
