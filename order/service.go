package order

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

var _ Service = (*service)(nil)

// ErrEmptyCart se devuelve al intentar confirmar un carrito vacío.
// Es un rechazo de política, no una falla: el formatter nunca corre.
var ErrEmptyCart = errors.New("cart is empty")

// Publisher emite eventos de dominio. Best effort: publicar nunca
// bloquea ni hace fallar la confirmación.
type Publisher interface {
	Publish(ctx context.Context, eventType enum.EventType, payload any)
}

// Submission es el resultado de confirmar un pedido: el mensaje plano
// y el link listo para abrir en el servicio de mensajería.
type Submission struct {
	Message string `json:"message"`
	Link    string `json:"whatsapp_url"`
}

type Service interface {
	Submit(ctx context.Context, cart *models.Cart, opts models.OrderOptions) (*Submission, error)
}

type service struct {
	links     LinkBuilder
	publisher Publisher // nil = eventos deshabilitados
	logger    *zap.Logger
}

func NewService(links LinkBuilder, publisher Publisher, logger *zap.Logger) Service {
	return &service{
		links:     links,
		publisher: publisher,
		logger:    logger,
	}
}

type submittedPayload struct {
	SessionID  string `json:"session_id"`
	TotalItems int64  `json:"total_items"`
	TotalPrice int64  `json:"total_price"`
}

func (s *service) Submit(ctx context.Context, cart *models.Cart, opts models.OrderOptions) (*Submission, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid order options: %w", err)
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	msg := FormatMessage(cart, opts)
	sub := &Submission{
		Message: msg,
		Link:    s.links.OrderLink(msg),
	}

	if s.publisher != nil {
		s.publisher.Publish(ctx, enum.EventTypeOrderSubmitted, submittedPayload{
			SessionID:  cart.SessionID,
			TotalItems: cart.TotalItems,
			TotalPrice: cart.TotalPrice,
		})
	}

	s.logger.Info("Order submitted",
		zap.String("session_id", cart.SessionID),
		zap.Int64("total_items", cart.TotalItems),
		zap.Int64("total_price", cart.TotalPrice))

	return sub, nil
}
