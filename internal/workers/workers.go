package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/connector-sync/internal/config"
	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg.
func NewWorkers(services *service.Services, cfg config.Workers, log *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.DriftCheckInterval > 0 {
		w.workers = append(w.workers, NewDriftWorker(services.EndpointService, services.DriftService, cfg.DriftCheckInterval, log))
	}
	return w
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}
