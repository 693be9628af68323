// Package cart implementa el agregado del carrito: el estado en memoria
// es la autoridad y cada mutación recalcula los totales y sobreescribe
// el snapshot persistido (best effort).
package cart

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
)

var _ Service = (*service)(nil)

// Service mantiene un carrito por sesión. Las operaciones nunca fallan:
// entradas inválidas se resuelven por política (clamp o no-op) y los
// errores de persistencia se degradan a logs.
type Service interface {
	GetCart(ctx context.Context, sessionID string) *models.Cart
	AddItem(ctx context.Context, sessionID string, line models.CartLine) *models.Cart
	RemoveItem(ctx context.Context, sessionID string, productID int64) *models.Cart
	UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int64) *models.Cart
	Clear(ctx context.Context, sessionID string) *models.Cart
}

type service struct {
	repo   Repository // nil = solo memoria
	logger *zap.Logger

	mu    sync.Mutex
	carts map[string]*models.Cart
}

func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
		carts:  make(map[string]*models.Cart),
	}
}

// session devuelve el carrito vivo de la sesión, hidratándolo del
// snapshot la primera vez. Un snapshot ilegible o un storage caído
// degradan en silencio a un carrito vacío. Caller holds s.mu.
func (s *service) session(ctx context.Context, sessionID string) *models.Cart {
	if c, ok := s.carts[sessionID]; ok {
		return c
	}

	c := models.NewCart(sessionID)
	if s.repo != nil {
		lines, err := s.repo.Load(ctx, sessionID)
		switch {
		case err == nil:
			c.Lines = lines
			c.RecomputeTotals()
		case errors.Is(err, ErrSnapshotNotFound), errors.Is(err, ErrSnapshotCorrupt):
			// carrito nuevo
		default:
			s.logger.Warn("Cart snapshot unavailable, starting empty",
				zap.Error(err), zap.String("session_id", sessionID))
		}
	}

	s.carts[sessionID] = c
	return c
}

// persist sobreescribe el snapshot. Si falla, el estado en memoria
// sigue siendo la autoridad por el resto de la sesión.
func (s *service) persist(ctx context.Context, c *models.Cart) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, c.SessionID, c.Lines); err != nil {
		s.logger.Warn("Failed to persist cart snapshot",
			zap.Error(err), zap.String("session_id", c.SessionID))
	}
}

func (s *service) GetCart(ctx context.Context, sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session(ctx, sessionID).Clone()
}

// AddItem suma cantidad si el producto ya está en el carrito (sin pisar
// nombre ni precio) o agrega un renglón nuevo al final. Una cantidad
// menor a 1 se lleva a 1: política documentada, nunca un error.
func (s *service) AddItem(ctx context.Context, sessionID string, line models.CartLine) *models.Cart {
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.session(ctx, sessionID)
	merged := false
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Lines = append(c.Lines, line)
	}

	c.RecomputeTotals()
	s.persist(ctx, c)
	return c.Clone()
}

// RemoveItem borra el renglón si existe; si no, no hace nada.
func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int64) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.session(ctx, sessionID)
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			break
		}
	}

	c.RecomputeTotals()
	s.persist(ctx, c)
	return c.Clone()
}

// UpdateQuantity fija la cantidad en forma absoluta. Cantidad <= 0
// equivale a RemoveItem; un producto desconocido es un no-op.
func (s *service) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int64) *models.Cart {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.session(ctx, sessionID)
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			break
		}
	}

	c.RecomputeTotals()
	s.persist(ctx, c)
	return c.Clone()
}

func (s *service) Clear(ctx context.Context, sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.session(ctx, sessionID)
	c.Lines = nil
	c.RecomputeTotals()
	s.persist(ctx, c)
	return c.Clone()
}
