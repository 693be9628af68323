package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(WithSession)

	r.Get("/categories", handler.ListCategories)
	r.Get("/categories/{slug}/products", handler.CategoryProducts)
	r.Get("/products/{id}", handler.GetProduct)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handler.GetCart)
		r.Delete("/", handler.ClearCart)
		r.Post("/items", handler.AddCartItem)
		r.Patch("/items/{productID}", handler.UpdateCartItem)
		r.Delete("/items/{productID}", handler.RemoveCartItem)
	})

	r.Post("/checkout", handler.Checkout)

	return r
}
