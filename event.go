package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
)

const eventSubjectPrefix = "storefront.event"

type EventHandler func(context.Context, *models.Event) error

// EventManager publica eventos de dominio en NATS y reparte los
// recibidos entre los handlers registrados vía el worker pool. Con
// conexión nil el eventing queda deshabilitado; publicar es siempre
// best effort y nunca hace fallar la operación que lo originó.
type EventManager struct {
	natsConn *nats.Conn
	handlers map[enum.EventType]EventHandler
	logger   *zap.Logger
}

func NewEventManager(natsConn *nats.Conn, logger *zap.Logger) *EventManager {
	return &EventManager{
		natsConn: natsConn,
		handlers: make(map[enum.EventType]EventHandler),
		logger:   logger,
	}
}

func (em *EventManager) RegisterHandler(eventType enum.EventType, handler EventHandler) {
	em.handlers[eventType] = handler
}

func (em *EventManager) GetHandler(eventType enum.EventType) (EventHandler, bool) {
	handler, exists := em.handlers[eventType]
	return handler, exists
}

// Publish arma el evento y lo emite en storefront.event.<tipo>.
func (em *EventManager) Publish(_ context.Context, eventType enum.EventType, payload any) {
	if em.natsConn == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		em.logger.Warn("Failed to marshal event payload", zap.Error(err), zap.String("event_type", string(eventType)))
		return
	}

	event := models.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}

	msg, err := json.Marshal(event)
	if err != nil {
		em.logger.Warn("Failed to marshal event", zap.Error(err), zap.String("event_type", string(eventType)))
		return
	}

	subject := fmt.Sprintf("%s.%s", eventSubjectPrefix, eventType)
	if err := em.natsConn.Publish(subject, msg); err != nil {
		em.logger.Warn("Failed to publish event", zap.Error(err), zap.String("subject", subject))
	}
}

// SubscribeToEvents engancha la suscripción que alimenta el pool.
func (em *EventManager) SubscribeToEvents(wp *WorkerPool) error {
	if em.natsConn == nil {
		return nil
	}

	_, err := em.natsConn.Subscribe(eventSubjectPrefix+".>", func(msg *nats.Msg) {
		var event models.Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			em.logger.Error("Failed to unmarshal event", zap.Error(err))
			return
		}

		handler, ok := em.GetHandler(event.Type)
		if !ok {
			return
		}

		wp.Submit(func() {
			if err := handler(context.Background(), &event); err != nil {
				em.logger.Error("Failed to process event",
					zap.Error(err),
					zap.String("event_type", string(event.Type)),
					zap.String("event_id", event.ID))
			}
		})
	})

	return err
}
