// Package health serves the outcome of the last control cycle on /health.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/acpilot/acpilot/internal/controller"
)

type Publisher interface {
	Subscribe() chan controller.Report
	Unsubscribe(chan controller.Report)
	Refresh()
}

// Health is unhealthy until the first report arrives, or when the last report is older than MaxAge.
type Health struct {
	Publisher
	MaxAge  time.Duration
	logger  *slog.Logger
	report  controller.Report
	updated time.Time
	now     func() time.Time
	lock    sync.RWMutex
}

func New(p Publisher, maxAge time.Duration, logger *slog.Logger) *Health {
	return &Health{
		Publisher: p,
		MaxAge:    maxAge,
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Health) Run(ctx context.Context) error {
	h.logger.Debug("started")
	defer h.logger.Debug("stopped")

	ch := h.Publisher.Subscribe()
	defer h.Publisher.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case report := <-ch:
			h.lock.Lock()
			h.report = report
			h.updated = h.now()
			h.lock.Unlock()
		}
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if h.updated.IsZero() {
		http.Error(w, "no update yet", http.StatusServiceUnavailable)
		h.Publisher.Refresh()
		return
	}
	if h.MaxAge > 0 && h.now().Sub(h.updated) > h.MaxAge {
		http.Error(w, "control loop not running", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(h.report); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
