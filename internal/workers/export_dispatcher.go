package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

//go:generate mockgen -source=export_dispatcher.go -destination=mocks/mock.go
type ExportSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.ExportRecord, error)
}

type ExportMetrics interface {
	ObserveExport(result string)
}

type DispatcherConfig struct {
	URL         string
	Workers     int
	MaxAttempts int
	Backoff     time.Duration
	PollTimeout time.Duration
}

// ExportDispatcher drains the export queue and posts every record to the
// spreadsheet webhook. Delivery is at-least-once per dequeue; a record that
// still fails after MaxAttempts is logged and dropped.
type ExportDispatcher struct {
	source  ExportSource
	client  *http.Client
	metrics ExportMetrics
	cfg     DispatcherConfig
	logger  *slog.Logger
}

func NewExportDispatcher(source ExportSource, cfg DispatcherConfig, metrics ExportMetrics, logger *slog.Logger) *ExportDispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 5 * time.Second
	}
	return &ExportDispatcher{
		source:  source,
		client:  &http.Client{Timeout: 10 * time.Second},
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled and every worker has returned.
func (d *ExportDispatcher) Run(ctx context.Context) {
	var wg sync.WaitGroup

	for i := 0; i < d.cfg.Workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.worker(ctx, i)
		}()
	}

	d.logger.Info("export dispatcher started", slog.Int("workers", d.cfg.Workers))
	wg.Wait()
	d.logger.Info("export dispatcher stopped")
}

func (d *ExportDispatcher) worker(ctx context.Context, id int) {
	log := d.logger.With(slog.Int("worker", id))

	for {
		if ctx.Err() != nil {
			return
		}

		rec, err := d.source.BRPop(ctx, d.cfg.PollTimeout)
		switch {
		case err == nil:
			d.deliver(ctx, log, rec)
		case errors.Is(err, e.ErrExportQueueEmpty):
		case ctx.Err() != nil:
			return
		default:
			log.Error("export queue pop failed", slog.Any("error", err))
			if !sleep(ctx, d.cfg.Backoff) {
				return
			}
		}
	}
}

func (d *ExportDispatcher) deliver(ctx context.Context, log *slog.Logger, rec domain.ExportRecord) {
	body, err := json.Marshal(rec)
	if err != nil {
		log.Error("export record marshal failed", slog.String("event_id", rec.EventID), slog.Any("error", err))
		d.observe("dropped")
		return
	}

	for attempt := 1; attempt <= d.cfg.MaxAttempts; attempt++ {
		err = d.post(ctx, body)
		if err == nil {
			d.observe("delivered")
			log.Debug("export delivered", slog.String("event_id", rec.EventID), slog.Int("attempt", attempt))
			return
		}

		log.Warn("export attempt failed",
			slog.String("event_id", rec.EventID),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
		d.observe("retry")

		if attempt < d.cfg.MaxAttempts && !sleep(ctx, time.Duration(attempt)*d.cfg.Backoff) {
			break
		}
	}

	log.Error("export dropped", slog.String("event_id", rec.EventID), slog.Any("error", err))
	d.observe("dropped")
}

func (d *ExportDispatcher) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("export webhook status %d", resp.StatusCode)
	}
	return nil
}

func (d *ExportDispatcher) observe(result string) {
	if d.metrics != nil {
		d.metrics.ObserveExport(result)
	}
}

func sleep(ctx context.Context, dur time.Duration) bool {
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
