package category

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	preloadBatchSize = 5
	// pausa corta entre tandas para no saturar el origen de imágenes
	preloadBatchPause = 100 * time.Millisecond
	preloadTimeout    = 10 * time.Second
)

// TaskPool ejecuta trabajo en background; lo implementa el WorkerPool
// del paquete raíz.
type TaskPool interface {
	Submit(task func())
}

// Preloader calienta las imágenes de categoría en tandas, marcando
// cada URL que respondió bien. Es puramente cosmético: un preload que
// falla solo deja la imagen sin marcar.
type Preloader struct {
	svc    Service
	pool   TaskPool
	client *http.Client
	logger *zap.Logger
}

func NewPreloader(svc Service, pool TaskPool, logger *zap.Logger) *Preloader {
	return &Preloader{
		svc:    svc,
		pool:   pool,
		client: &http.Client{Timeout: preloadTimeout},
		logger: logger,
	}
}

// Warm recorre las URLs en tandas de preloadBatchSize. Cada URL se
// resuelve en el pool; entre tandas hay una pausa corta. Cancelar el
// contexto corta las tandas pendientes.
func (p *Preloader) Warm(ctx context.Context, urls []string) {
	go func() {
		for start := 0; start < len(urls); start += preloadBatchSize {
			if ctx.Err() != nil {
				return
			}

			end := min(start+preloadBatchSize, len(urls))
			for _, u := range urls[start:end] {
				if p.svc.ImageLoaded(u) {
					continue
				}
				imageURL := u
				p.pool.Submit(func() {
					p.fetch(ctx, imageURL)
				})
			}

			if end < len(urls) {
				select {
				case <-ctx.Done():
					return
				case <-time.After(preloadBatchPause):
				}
			}
		}
	}()
}

func (p *Preloader) fetch(ctx context.Context, imageURL string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		p.logger.Warn("Failed to build preload request", zap.Error(err), zap.String("url", imageURL))
		return
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("Image preload failed", zap.Error(err), zap.String("url", imageURL))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.logger.Warn("Image preload returned bad status",
			zap.Int("status", resp.StatusCode), zap.String("url", imageURL))
		return
	}

	p.svc.MarkImageLoaded(ctx, imageURL)
}
