// Package storefront es la fachada del catálogo mayorista: categorías,
// productos, carrito por sesión y confirmación del pedido como mensaje
// de WhatsApp. No hay pagos, stock ni procesamiento de pedidos.
package storefront

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/cart"
	"github.com/Ubarrionuevo/distribuidora-leo/catalog"
	"github.com/Ubarrionuevo/distribuidora-leo/category"
	"github.com/Ubarrionuevo/distribuidora-leo/models"
	"github.com/Ubarrionuevo/distribuidora-leo/models/enum"
	"github.com/Ubarrionuevo/distribuidora-leo/order"
)

// ErrProductNotFound se devuelve al intentar agregar al carrito un
// producto que no existe en el catálogo.
var ErrProductNotFound = errors.New("product not found")

// Service orquesta el catálogo, el carrito y la confirmación de
// pedidos. Una instancia por proceso.
type Service struct {
	catalog    *catalog.Catalog
	carts      cart.Service
	categories category.Service
	orders     order.Service

	eventManager *EventManager
	workerPool   *WorkerPool
	preloader    *category.Preloader
	logger       *zap.Logger
}

func NewService(
	cartRepo cart.Repository, categoryRepo category.Repository,
	natsConn *nats.Conn,
	links order.LinkBuilder,
	logger *zap.Logger) *Service {

	cat := catalog.New()

	s := &Service{
		catalog:    cat,
		carts:      cart.NewService(cartRepo, logger),
		categories: category.NewService(context.Background(), cat, categoryRepo, logger),
		logger:     logger,
	}
	s.eventManager = NewEventManager(natsConn, logger)
	s.workerPool = NewWorkerPool(10, logger)
	s.orders = order.NewService(links, s.eventManager, logger)
	s.preloader = category.NewPreloader(s.categories, s.workerPool, logger)
	s.registerEventHandlers()

	if err := s.eventManager.SubscribeToEvents(s.workerPool); err != nil {
		logger.Error("Failed to subscribe to events", zap.Error(err))
	}

	return s
}

// Shutdown drena el worker pool.
func (s *Service) Shutdown() {
	s.workerPool.Shutdown()
}

// WarmCategoryImages arranca el preload progresivo de imágenes.
func (s *Service) WarmCategoryImages(ctx context.Context) {
	s.preloader.Warm(ctx, s.categories.ImageURLs())
}

// --- catálogo ---

func (s *Service) Categories(ctx context.Context) []category.View {
	return s.categories.List(ctx)
}

func (s *Service) CategoryBySlug(ctx context.Context, slug string) models.Category {
	return s.categories.GetBySlug(ctx, slug)
}

func (s *Service) ProductsByCategory(slug string) []models.Product {
	return s.catalog.ProductsByCategory(slug)
}

func (s *Service) Product(id int64) (models.Product, bool) {
	return s.catalog.ProductByID(id)
}

// --- carrito ---

func (s *Service) GetCart(ctx context.Context, sessionID string) *models.Cart {
	return s.carts.GetCart(ctx, sessionID)
}

// AddToCart copia nombre, precio y descripción del catálogo al renglón
// en el momento de agregar; el carrito nunca vuelve a consultarlos.
func (s *Service) AddToCart(ctx context.Context, sessionID string, productID, quantity int64) (*models.Cart, error) {
	p, ok := s.catalog.ProductByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}

	return s.carts.AddItem(ctx, sessionID, models.CartLine{
		ProductID:    p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategorySlug: p.CategorySlug,
		UnitPrice:    p.Price,
		Quantity:     quantity,
	}), nil
}

func (s *Service) UpdateCartQuantity(ctx context.Context, sessionID string, productID, quantity int64) *models.Cart {
	return s.carts.UpdateQuantity(ctx, sessionID, productID, quantity)
}

func (s *Service) RemoveFromCart(ctx context.Context, sessionID string, productID int64) *models.Cart {
	return s.carts.RemoveItem(ctx, sessionID, productID)
}

func (s *Service) ClearCart(ctx context.Context, sessionID string) *models.Cart {
	c := s.carts.Clear(ctx, sessionID)
	s.eventManager.Publish(ctx, enum.EventTypeCartCleared, struct {
		SessionID string `json:"session_id"`
	}{SessionID: sessionID})
	return c
}

// --- pedido ---

// Checkout valida y confirma el pedido de la sesión. Carrito vacío u
// opciones inválidas rechazan antes de formatear.
func (s *Service) Checkout(ctx context.Context, sessionID string, opts models.OrderOptions) (*order.Submission, error) {
	c := s.carts.GetCart(ctx, sessionID)
	return s.orders.Submit(ctx, c, opts)
}

// --- eventos ---

func (s *Service) registerEventHandlers() {
	s.eventManager.RegisterHandler(enum.EventTypeOrderSubmitted, s.handleOrderSubmitted)
	s.eventManager.RegisterHandler(enum.EventTypeCartCleared, s.handleCartCleared)
}

// handleOrderSubmitted deja el rastro de auditoría del pedido; no hay
// más procesamiento del lado del servidor.
func (s *Service) handleOrderSubmitted(_ context.Context, event *models.Event) error {
	var payload struct {
		SessionID  string `json:"session_id"`
		TotalItems int64  `json:"total_items"`
		TotalPrice int64  `json:"total_price"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return err
	}

	s.logger.Info("Order submitted event",
		zap.String("event_id", event.ID),
		zap.String("session_id", payload.SessionID),
		zap.Int64("total_items", payload.TotalItems),
		zap.Int64("total_price", payload.TotalPrice))
	return nil
}

func (s *Service) handleCartCleared(_ context.Context, event *models.Event) error {
	s.logger.Info("Cart cleared event", zap.String("event_id", event.ID))
	return nil
}
