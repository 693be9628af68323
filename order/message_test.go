package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

func cartWith(lines ...models.CartLine) *models.Cart {
	c := models.NewCart("s1")
	c.Lines = lines
	c.RecomputeTotals()
	return c
}

func TestFormatMessage_SingleLineCashPickup(t *testing.T) {
	c := cartWith(models.CartLine{ProductID: 1, Name: "A", UnitPrice: 100, Quantity: 2})
	opts := models.OrderOptions{
		PaymentMethod:  enum.PaymentMethodCash,
		DeliveryMethod: enum.DeliveryMethodPickup,
	}

	msg := FormatMessage(c, opts)

	assert.Contains(t, msg, "Pedido - DISTRIBUIDORA LEO:")
	assert.Contains(t, msg, "⚪ A x 2 = $200")
	assert.Contains(t, msg, "Precio Total: $200")
	assert.Contains(t, msg, "⚫Efectivo")
	assert.Contains(t, msg, "⚪Transferencia")
	assert.Contains(t, msg, "⚫Retiro en local: Av. San Martín 1234, Ciudad, Mendoza")
	assert.Contains(t, msg, "⚪Envío a domicilio")
	assert.NotContains(t, msg, "Información Adicional")
	assert.Contains(t, msg, "⚫Horario\nL a V: 8 a 18 hs\nS: 8 a 13 hs")
}

func TestFormatMessage_TransferHomeDeliveryWithNote(t *testing.T) {
	c := cartWith(models.CartLine{ProductID: 1, Name: "A", UnitPrice: 100, Quantity: 1})
	opts := models.OrderOptions{
		PaymentMethod:  enum.PaymentMethodTransfer,
		DeliveryMethod: enum.DeliveryMethodHomeDelivery,
		Note:           "tocar timbre dos veces",
	}

	msg := FormatMessage(c, opts)

	assert.Contains(t, msg, "⚫Transferencia")
	assert.Contains(t, msg, "⚪Efectivo")
	assert.Contains(t, msg, "⚫Envío a domicilio")
	assert.Contains(t, msg, "⚪Retiro en local")
	assert.Contains(t, msg, "⚫Información Adicional:\ntocar timbre dos veces")
}

func TestFormatMessage_ThousandsSeparators(t *testing.T) {
	c := cartWith(models.CartLine{ProductID: 1, Name: "Brahma 1l (12u)", UnitPrice: 26500, Quantity: 2})
	opts := models.OrderOptions{
		PaymentMethod:  enum.PaymentMethodCash,
		DeliveryMethod: enum.DeliveryMethodPickup,
	}

	msg := FormatMessage(c, opts)

	assert.Contains(t, msg, "Brahma 1l (12u) x 2 = $53.000")
	assert.Contains(t, msg, "Precio Total: $53.000")
}

func TestFormatMessage_LinesInDisplayOrder(t *testing.T) {
	c := cartWith(
		models.CartLine{ProductID: 2, Name: "Zeta", UnitPrice: 100, Quantity: 1},
		models.CartLine{ProductID: 1, Name: "Alfa", UnitPrice: 100, Quantity: 1},
	)
	opts := models.OrderOptions{
		PaymentMethod:  enum.PaymentMethodCash,
		DeliveryMethod: enum.DeliveryMethodPickup,
	}

	msg := FormatMessage(c, opts)

	require.Less(t, strings.Index(msg, "Zeta"), strings.Index(msg, "Alfa"))
}

func TestFormatMessage_Pure(t *testing.T) {
	c := cartWith(models.CartLine{ProductID: 1, Name: "A", UnitPrice: 26500, Quantity: 3})
	opts := models.OrderOptions{
		PaymentMethod:  enum.PaymentMethodTransfer,
		DeliveryMethod: enum.DeliveryMethodHomeDelivery,
		Note:           "sin hielo",
	}

	assert.Equal(t, FormatMessage(c, opts), FormatMessage(c, opts))
}

func TestOrderLink_PercentEncodesMessage(t *testing.T) {
	b := NewLinkBuilder("", "")

	link := b.OrderLink("Pedido - DISTRIBUIDORA LEO:\n\n⚪ A x 2 = $200")

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5491112345678?text="), link)
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "\n")
}

func TestOrderLink_CustomContact(t *testing.T) {
	b := NewLinkBuilder("https://example.test/wa", "123")

	link := b.OrderLink("hola")

	assert.Equal(t, "https://example.test/wa/123?text=hola", link)
}
