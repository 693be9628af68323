package httpx

import (
	"github.com/Ubarrionuevo/distribuidora-leo/models"
	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type CheckoutRequest struct {
	PaymentMethod  string `json:"payment_method"`
	DeliveryMethod string `json:"delivery_method"`
	Note           string `json:"note,omitempty"`
}

func (r CheckoutRequest) toOptions() models.OrderOptions {
	return models.OrderOptions{
		PaymentMethod:  enum.PaymentMethod(r.PaymentMethod),
		DeliveryMethod: enum.DeliveryMethod(r.DeliveryMethod),
		Note:           r.Note,
	}
}

type CategoryProductsResponse struct {
	Category models.Category  `json:"category"`
	Products []models.Product `json:"products"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
