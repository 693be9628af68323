// Package httpx expone la API JSON del storefront.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	storefront "github.com/Ubarrionuevo/distribuidora-leo"
	"github.com/Ubarrionuevo/distribuidora-leo/order"
)

type Handler struct {
	svc    *storefront.Service
	logger *zap.Logger
}

func NewHandler(svc *storefront.Service, logger *zap.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// ListCategories devuelve las categorías con su estado de imagen.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories(r.Context()))
}

// CategoryProducts resuelve el slug (con placeholder para desconocidos)
// y lista sus productos en orden de catálogo.
func (h *Handler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	writeJSON(w, http.StatusOK, CategoryProductsResponse{
		Category: h.svc.CategoryBySlug(r.Context(), slug),
		Products: h.svc.ProductsByCategory(slug),
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", err.Error())
		return
	}

	p, ok := h.svc.Product(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.GetCart(r.Context(), sessionID(r)))
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	c, err := h.svc.AddToCart(r.Context(), sessionID(r), req.ProductID, req.Quantity)
	if errors.Is(err, storefront.ErrProductNotFound) {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", err.Error())
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.svc.UpdateCartQuantity(r.Context(), sessionID(r), productID, req.Quantity))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_product_id", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, h.svc.RemoveFromCart(r.Context(), sessionID(r), productID))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ClearCart(r.Context(), sessionID(r)))
}

// Checkout confirma el pedido: carrito vacío responde 422 y opciones
// inválidas 400, sin formatear nada.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	sub, err := h.svc.Checkout(r.Context(), sessionID(r), req.toOptions())
	if errors.Is(err, order.ErrEmptyCart) {
		writeError(w, http.StatusUnprocessableEntity, "empty_cart", "el carrito está vacío")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_options", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, sub)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
