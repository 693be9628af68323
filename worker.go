package storefront

import (
	"sync"

	"go.uber.org/zap"
)

// WorkerPool ejecuta tareas en background con un tope fijo de
// concurrencia: handlers de eventos y preloads de imágenes.
type WorkerPool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	logger *zap.Logger

	closeOnce sync.Once
}

func NewWorkerPool(size int, logger *zap.Logger) *WorkerPool {
	wp := &WorkerPool{
		tasks:  make(chan func(), 1000),
		logger: logger,
	}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

// Submit encola la tarea; si el pool ya cerró, la descarta con un log.
func (wp *WorkerPool) Submit(task func()) {
	defer func() {
		if recover() != nil {
			wp.logger.Warn("Task submitted after pool shutdown, dropped")
		}
	}()
	wp.tasks <- task
}

// Shutdown espera a que terminen las tareas encoladas.
func (wp *WorkerPool) Shutdown() {
	wp.closeOnce.Do(func() {
		close(wp.tasks)
	})
	wp.wg.Wait()
}
