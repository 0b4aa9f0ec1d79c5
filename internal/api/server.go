// Package api serves the HTTP control surface: rule management, control loop status and the force-transmit flag.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/store"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type RuleStore interface {
	List(ctx context.Context) ([]rules.Rule, error)
	Get(ctx context.Context, id int) (rules.Rule, error)
	Create(ctx context.Context, p store.Patch) (int, error)
	Update(ctx context.Context, id int, p store.Patch) error
	Delete(ctx context.Context, id int) error
	Sort(ctx context.Context) error
	Save(ctx context.Context) error
	Load(ctx context.Context) error
	Reset(ctx context.Context) error
}

type Controller interface {
	ActiveRuleID() int
	LastReport() (controller.Report, bool)
	Status() controller.Status
	AC() rules.ACConfig
	SetForce(bool)
	Force() bool
	Refresh()
}

// Server handles the HTTP API.
type Server struct {
	Store      RuleStore
	Controller Controller
	logger     *slog.Logger
	handler    http.Handler
}

// New creates a Server. If health is not nil, it is served on /health. If registerer is not nil, request metrics are
// registered with it.
func New(s RuleStore, c Controller, health http.Handler, registerer prometheus.Registerer, logger *slog.Logger) *Server {
	srv := Server{
		Store:      s,
		Controller: c,
		logger:     logger,
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/rules", srv.listRules).Methods(http.MethodGet)
	r.HandleFunc("/api/rules", srv.createRule).Methods(http.MethodPost)
	r.HandleFunc("/api/rules", srv.updateRule).Methods(http.MethodPut)
	r.HandleFunc("/api/rules", srv.deleteRule).Methods(http.MethodDelete)
	r.HandleFunc("/api/rules/active", srv.activeRule).Methods(http.MethodGet)
	r.HandleFunc("/api/rules/save", srv.storeOperation((RuleStore).Save, false)).Methods(http.MethodPost)
	r.HandleFunc("/api/rules/load", srv.storeOperation((RuleStore).Load, true)).Methods(http.MethodPost)
	r.HandleFunc("/api/rules/reset", srv.storeOperation((RuleStore).Reset, true)).Methods(http.MethodPost)
	r.HandleFunc("/api/rules/sort", srv.storeOperation((RuleStore).Sort, true)).Methods(http.MethodPost)
	r.HandleFunc("/api/rules/{id:[0-9]+}", srv.getRule).Methods(http.MethodGet)
	r.HandleFunc("/api/rules/{id:[0-9]+}", srv.updateRule).Methods(http.MethodPut)
	r.HandleFunc("/api/rules/{id:[0-9]+}", srv.deleteRule).Methods(http.MethodDelete)
	r.HandleFunc("/api/status", srv.status).Methods(http.MethodGet)
	r.HandleFunc("/api/debug", srv.debug).Methods(http.MethodGet, http.MethodPost)
	if health != nil {
		r.Handle("/health", health).Methods(http.MethodGet)
	}

	var h http.Handler = r
	if registerer != nil {
		h = instrument(h, registerer)
	}
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	srv.handler = handlers.CustomLoggingHandler(io.Discard, h, srv.logRequest)
	return &srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	s.logger.Debug("http request",
		slog.String("method", params.Request.Method),
		slog.String("path", params.URL.Path),
		slog.Int("code", params.StatusCode),
		slog.Int("size", params.Size),
	)
}
