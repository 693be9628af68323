package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ Repository = (*repository)(nil)

const imageSetKey = "category:preloaded"

// Repository persiste el conjunto de imágenes ya cargadas. Igual que el
// snapshot del carrito: sobreescritura completa, best effort, una forma
// ilegible se trata como vacía.
type Repository interface {
	LoadImageSet(ctx context.Context) (map[string]bool, error)
	SaveImageSet(ctx context.Context, loaded map[string]bool) error
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

func (r *repository) LoadImageSet(ctx context.Context) (map[string]bool, error) {
	data, err := r.client.Get(ctx, imageSetKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var loaded map[string]bool
	if err := json.Unmarshal(data, &loaded); err != nil {
		r.logger.Warn("Image set snapshot unreadable, starting empty", zap.Error(err))
		return map[string]bool{}, nil
	}
	return loaded, nil
}

func (r *repository) SaveImageSet(ctx context.Context, loaded map[string]bool) error {
	data, err := json.Marshal(loaded)
	if err != nil {
		return fmt.Errorf("marshal image set failed: %w", err)
	}
	if err := r.client.Set(ctx, imageSetKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}
