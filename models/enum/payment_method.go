package enum

// PaymentMethod is the payment choice gathered at submission time.
type PaymentMethod string

const (
	PaymentMethodTransfer PaymentMethod = "transfer" // transferencia bancaria
	PaymentMethodCash     PaymentMethod = "cash"     // efectivo
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodTransfer, PaymentMethodCash:
		return true
	}
	return false
}
