package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/models"
)

var _ Repository = (*repository)(nil)

var (
	// ErrSnapshotNotFound indica que nunca se guardó un carrito para la sesión.
	ErrSnapshotNotFound = errors.New("cart snapshot not found")
	// ErrSnapshotCorrupt indica un snapshot guardado con una forma incompatible.
	ErrSnapshotCorrupt = errors.New("cart snapshot corrupt")
)

// Repository persiste el snapshot del carrito bajo una clave fija por
// sesión. Save sobreescribe el snapshot completo en cada mutación; no
// hay versionado ni migración: una forma incompatible se trata como
// ausente (ErrSnapshotCorrupt y el carrito arranca vacío).
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []models.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}

type repository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRepository(client *redis.Client, logger *zap.Logger) Repository {
	return &repository{
		client: client,
		logger: logger,
	}
}

func snapshotKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (r *repository) Load(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	data, err := r.client.Get(ctx, snapshotKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		r.logger.Warn("Failed to load cart snapshot", zap.Error(err), zap.String("session_id", sessionID))
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.logger.Warn("Cart snapshot unreadable, treating as absent", zap.Error(err), zap.String("session_id", sessionID))
		return nil, ErrSnapshotCorrupt
	}

	return lines, nil
}

func (r *repository) Save(ctx context.Context, sessionID string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// Sin TTL: el carrito sobrevive entre sesiones hasta que se vacíe.
	if err := r.client.Set(ctx, snapshotKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, snapshotKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
