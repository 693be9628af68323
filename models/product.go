package models

// Product es un producto del catálogo estático. Price está en pesos
// enteros (ARS), sin centavos, igual que la lista de precios impresa.
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	CategorySlug string `json:"category_slug"`
}
