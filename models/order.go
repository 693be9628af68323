package models

import (
	"fmt"

	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

// OrderOptions son las opciones elegidas al confirmar el pedido.
// Son efímeras: nunca se persisten.
type OrderOptions struct {
	PaymentMethod  enum.PaymentMethod  `json:"payment_method"`
	DeliveryMethod enum.DeliveryMethod `json:"delivery_method"`
	Note           string              `json:"note,omitempty"`
}

func (o OrderOptions) Validate() error {
	if !o.PaymentMethod.Valid() {
		return fmt.Errorf("invalid payment method: %q", o.PaymentMethod)
	}
	if !o.DeliveryMethod.Valid() {
		return fmt.Errorf("invalid delivery method: %q", o.DeliveryMethod)
	}
	return nil
}
