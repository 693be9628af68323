package enum

// DeliveryMethod is the delivery choice gathered at submission time.
type DeliveryMethod string

const (
	DeliveryMethodPickup       DeliveryMethod = "pickup"        // retiro en local
	DeliveryMethodHomeDelivery DeliveryMethod = "home_delivery" // envío a domicilio
)

func (m DeliveryMethod) Valid() bool {
	switch m {
	case DeliveryMethodPickup, DeliveryMethodHomeDelivery:
		return true
	}
	return false
}
