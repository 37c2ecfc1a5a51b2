package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/connector-sync/internal/logger"
	"github.com/MKhiriev/connector-sync/internal/service"
)

// DriftWorker periodically runs a drift report for every registered
// endpoint, refreshing the stored out-of-sync flags.
type DriftWorker struct {
	endpoints service.EndpointService
	drift     service.DriftService
	interval  time.Duration
	logger    *logger.Logger
}

func NewDriftWorker(endpoints service.EndpointService, drift service.DriftService, interval time.Duration, log *logger.Logger) *DriftWorker {
	return &DriftWorker{
		endpoints: endpoints,
		drift:     drift,
		interval:  interval,
		logger:    log,
	}
}

// Run sweeps once per interval until ctx is done.
func (d *DriftWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info().Dur("interval", d.interval).Msg("drift worker started")
	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Msg("drift worker stopped")
			return
		case <-ticker.C:
			d.Sweep(ctx)
		}
	}
}

// Sweep reports drift for every endpoint. A failing endpoint is logged and
// skipped. It returns the number of endpoints that were fully checked.
func (d *DriftWorker) Sweep(ctx context.Context) int {
	log := d.logger.GetChildLogger()
	ctx = log.WithContext(ctx)

	endpoints, err := d.endpoints.List(ctx)
	if err != nil {
		log.Err(err).Str("func", "DriftWorker.Sweep").Msg("listing endpoints failed")
		return 0
	}

	checked := 0
	for _, endpoint := range endpoints {
		if ctx.Err() != nil {
			break
		}

		report, err := d.drift.Report(ctx, endpoint.ID)
		if err != nil {
			log.Warn().Err(err).
				Str("func", "DriftWorker.Sweep").
				Int64("endpoint_id", endpoint.ID).
				Msg("drift check failed")
			continue
		}

		checked++
		event := log.Info()
		if !report.InSync() {
			event = log.Warn()
		}
		event.
			Str("func", "DriftWorker.Sweep").
			Int64("endpoint_id", endpoint.ID).
			Bool("in_sync", report.InSync()).
			Msg("drift check finished")
	}

	return checked
}
