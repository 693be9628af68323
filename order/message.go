// Package order arma el mensaje de pedido y el link de WhatsApp a
// partir del carrito. No hay procesamiento de pedidos del lado del
// servidor: el pedido viaja como texto al contacto del negocio.
package order

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

const (
	headerLine    = "Pedido - DISTRIBUIDORA LEO:"
	pickupAddress = "Av. San Martín 1234, Ciudad, Mendoza"

	markerOn  = "⚫"
	markerOff = "⚪"
)

// es-AR: separador de miles con punto, igual que toLocaleString.
var pesos = message.NewPrinter(language.MustParse("es-AR"))

// formatAmount renders an ARS amount with thousands separators.
func formatAmount(n int64) string {
	return pesos.Sprintf("%d", n)
}

func marker(selected bool) string {
	if selected {
		return markerOn
	}
	return markerOff
}

// FormatMessage produce el resumen del pedido en texto plano. Es una
// función pura del snapshot del carrito y las opciones: misma entrada,
// byte a byte la misma salida. El caller debe rechazar carritos vacíos
// antes de llamar (ver Service.Submit).
func FormatMessage(cart *models.Cart, opts models.OrderOptions) string {
	var b strings.Builder

	b.WriteString(headerLine + "\n\n")

	for _, line := range cart.Lines {
		b.WriteString(markerOff + " " + line.Name + " x " +
			strconv.FormatInt(line.Quantity, 10) + " = $" + formatAmount(line.Subtotal()) + "\n")
	}

	b.WriteString("\nPrecio Total: $" + formatAmount(cart.TotalPrice) + "\n\n")

	b.WriteString("Método de Pago:\n")
	b.WriteString(marker(opts.PaymentMethod == enum.PaymentMethodTransfer) + "Transferencia\n")
	b.WriteString(marker(opts.PaymentMethod == enum.PaymentMethodCash) + "Efectivo\n\n")

	b.WriteString("Método de Entrega:\n")
	b.WriteString(marker(opts.DeliveryMethod == enum.DeliveryMethodPickup) + "Retiro en local: " + pickupAddress + "\n")
	b.WriteString(marker(opts.DeliveryMethod == enum.DeliveryMethodHomeDelivery) + "Envío a domicilio\n\n")

	if opts.Note != "" {
		b.WriteString(markerOn + "Información Adicional:\n" + opts.Note + "\n\n")
	}

	b.WriteString(markerOn + "Horario\nL a V: 8 a 18 hs\nS: 8 a 13 hs")

	return b.String()
}
