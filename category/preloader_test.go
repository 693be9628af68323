package category

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// syncPool ejecuta las tareas inline: suficiente para el preloader.
type syncPool struct{}

func (syncPool) Submit(task func()) { task() }

func TestWarm_MarksReachableImages(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/broken.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := newTestService(t, nil)
	p := NewPreloader(svc, syncPool{}, zap.NewNop())

	urls := make([]string, 0, 8)
	for i := 0; i < 7; i++ {
		urls = append(urls, fmt.Sprintf("%s/img-%d.jpg", srv.URL, i))
	}
	urls = append(urls, srv.URL+"/broken.jpg")

	p.Warm(context.Background(), urls)

	assert.Eventually(t, func() bool {
		for _, u := range urls[:7] {
			if !svc.ImageLoaded(u) {
				return false
			}
		}
		return true
	}, 3*time.Second, 20*time.Millisecond)

	assert.False(t, svc.ImageLoaded(srv.URL+"/broken.jpg"))
	assert.Eventually(t, func() bool { return hits.Load() == 8 }, 3*time.Second, 20*time.Millisecond)
}

func TestWarm_SkipsAlreadyLoaded(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	svc := newTestService(t, nil)
	url := srv.URL + "/ya-cargada.jpg"
	svc.MarkImageLoaded(context.Background(), url)

	p := NewPreloader(svc, syncPool{}, zap.NewNop())
	p.Warm(context.Background(), []string{url})

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, hits.Load())
}

func TestWarm_CancelledContextStops(t *testing.T) {
	svc := newTestService(t, nil)
	p := NewPreloader(svc, syncPool{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p.Warm(ctx, []string{"http://127.0.0.1:1/x.jpg"})

	time.Sleep(100 * time.Millisecond)
	assert.False(t, svc.ImageLoaded("http://127.0.0.1:1/x.jpg"))
}
