package models

// Category es una categoría del catálogo estático.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Emoji    string `json:"emoji"`
	ImageURL string `json:"image_url"`
}
