// Package category mantiene la lista estática de categorías y el
// estado de carga de sus imágenes, solo para la UI progresiva. No es
// parte del dominio del pedido: una imagen marcada como cargada queda
// cargada por el resto de la sesión y nada más.
package category

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Ubarrionuevo/distribuidora-leo/catalog"
	"github.com/Ubarrionuevo/distribuidora-leo/models"
)

var _ Service = (*service)(nil)

// View es una categoría más su estado de imagen para la UI.
type View struct {
	models.Category
	ImageLoaded bool `json:"image_loaded"`
}

type Service interface {
	List(ctx context.Context) []View
	GetBySlug(ctx context.Context, slug string) models.Category
	ImageURLs() []string
	MarkImageLoaded(ctx context.Context, imageURL string)
	ImageLoaded(imageURL string) bool
}

type service struct {
	catalog *catalog.Catalog
	repo    Repository // nil = solo memoria
	logger  *zap.Logger

	mu     sync.RWMutex
	loaded map[string]bool
}

func NewService(ctx context.Context, cat *catalog.Catalog, repo Repository, logger *zap.Logger) Service {
	s := &service{
		catalog: cat,
		repo:    repo,
		logger:  logger,
		loaded:  make(map[string]bool),
	}

	if repo != nil {
		if loaded, err := repo.LoadImageSet(ctx); err != nil {
			logger.Warn("Failed to load image set snapshot", zap.Error(err))
		} else {
			s.loaded = loaded
		}
	}

	return s
}

func (s *service) List(_ context.Context) []View {
	cats := s.catalog.Categories()

	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]View, len(cats))
	for i, c := range cats {
		views[i] = View{Category: c, ImageLoaded: s.loaded[c.ImageURL]}
	}
	return views
}

// GetBySlug nunca falla: un slug desconocido resuelve al placeholder
// del catálogo en lugar de romper la página.
func (s *service) GetBySlug(_ context.Context, slug string) models.Category {
	return s.catalog.CategoryBySlug(slug)
}

func (s *service) ImageURLs() []string {
	cats := s.catalog.Categories()
	urls := make([]string, len(cats))
	for i, c := range cats {
		urls[i] = c.ImageURL
	}
	return urls
}

// MarkImageLoaded es idempotente; el snapshot se sobreescribe entero
// en cada marca, best effort.
func (s *service) MarkImageLoaded(ctx context.Context, imageURL string) {
	s.mu.Lock()
	s.loaded[imageURL] = true
	snapshot := make(map[string]bool, len(s.loaded))
	for k, v := range s.loaded {
		snapshot[k] = v
	}
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.SaveImageSet(ctx, snapshot); err != nil {
			s.logger.Warn("Failed to persist image set snapshot", zap.Error(err))
		}
	}
}

func (s *service) ImageLoaded(imageURL string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[imageURL]
}
