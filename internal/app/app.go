// Package app builds the controller and everything around it from the configuration, and runs it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/acpilot/acpilot/internal/api"
	"github.com/acpilot/acpilot/internal/bot"
	"github.com/acpilot/acpilot/internal/collector"
	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/health"
	"github.com/acpilot/acpilot/internal/mqttclient"
	"github.com/acpilot/acpilot/internal/notifier"
	"github.com/acpilot/acpilot/internal/sensor"
	"github.com/acpilot/acpilot/internal/store"
	"github.com/acpilot/acpilot/internal/store/filestore"
	"github.com/acpilot/acpilot/internal/store/redisstore"
	"github.com/acpilot/acpilot/internal/tadoclient"
	"github.com/acpilot/acpilot/internal/transport"
	"github.com/clambin/go-common/slackbot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/slack-go/slack"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// A Task runs until its context is cancelled.
type Task interface {
	Run(ctx context.Context) error
}

// TadoClient is the part of the tadoº API that the sensor and the transport use.
type TadoClient interface {
	sensor.TadoGetter
	transport.TadoSetter
}

// MQTTClient is the part of the MQTT client that the sensor, the transports and the telemetry notifier use.
type MQTTClient interface {
	mqttclient.Publisher
	mqttclient.Subscriber
}

// Clients holds the connections to external services. A client is only set if the configuration needs it.
type Clients struct {
	Tado   TadoClient
	ZoneID int
	MQTT   MQTTClient
}

// App is a fully wired controller.
type App struct {
	Store      *store.Store
	Controller *controller.Controller
	tasks      []Task
	release    func(context.Context) error
	logger     *slog.Logger
}

// New connects to the external services named in the configuration and builds the App.
func New(ctx context.Context, cfg *viper.Viper, version string, registry prometheus.Registerer, logger *slog.Logger) (*App, error) {
	clients, err := connect(ctx, cfg, registry, logger)
	if err != nil {
		return nil, err
	}
	return build(cfg, clients, version, registry, logger)
}

func connect(ctx context.Context, cfg *viper.Viper, registry prometheus.Registerer, logger *slog.Logger) (Clients, error) {
	var clients Clients
	if cfg.GetString("sensor.type") == "tado" || cfg.GetString("transport.type") == "tado" {
		api, err := tadoclient.New(tadoclient.Config{
			Username:     cfg.GetString("tado.username"),
			Password:     cfg.GetString("tado.password"),
			ClientSecret: cfg.GetString("tado.clientSecret"),
		}, registry)
		if err != nil {
			return clients, err
		}
		clients.Tado = api
		if clients.ZoneID, err = sensor.LookupZone(ctx, api, cfg.GetString("tado.zone")); err != nil {
			return clients, err
		}
	}
	if needsMQTT(cfg) {
		c, err := mqttclient.Connect(cfg.GetString("mqtt.broker"), cfg.GetString("mqtt.clientID"), logger.With("component", "mqtt"))
		if err != nil {
			return clients, err
		}
		clients.MQTT = c
	}
	return clients, nil
}

func needsMQTT(cfg *viper.Viper) bool {
	switch {
	case cfg.GetString("sensor.type") == "mqtt",
		cfg.GetString("transport.type") == "mqtt",
		cfg.GetString("transport.type") == "ircodes",
		cfg.GetString("telemetry.topic") != "":
		return true
	default:
		return false
	}
}

func build(cfg *viper.Viper, clients Clients, version string, registry prometheus.Registerer, l *slog.Logger) (*App, error) {
	a := App{logger: l}

	// Rule store
	backend, err := NewBackend(cfg)
	if err != nil {
		return nil, err
	}
	a.Store = store.New(backend, l.With("component", "store"))

	// Sensor
	s, sensorTask, err := makeSensor(cfg, clients, l.With("component", "sensor"))
	if err != nil {
		return nil, err
	}
	if sensorTask != nil {
		a.tasks = append(a.tasks, sensorTask)
	}

	// Transport
	t, err := makeTransport(cfg, clients, l.With("component", "transport"))
	if err != nil {
		return nil, err
	}
	if tt, ok := t.(*transport.TadoTransport); ok {
		a.release = tt.Release
	}

	// Controller
	location, err := time.LoadLocation(cfg.GetString("time.location"))
	if err != nil {
		return nil, fmt.Errorf("time.location: %w", err)
	}
	a.Controller = controller.New(controller.Configuration{
		Interval:    cfg.GetDuration("controller.interval"),
		LockTimeout: cfg.GetDuration("controller.lockTimeout"),
		Force:       cfg.GetBool("controller.force"),
		Location:    location,
	}, a.Store, s, t, l.With("component", "controller"))
	a.tasks = append(a.tasks, a.Controller)

	// Notifiers
	notifiers := notifier.Notifiers{notifier.SLogNotifier{Logger: l.With("component", "notifier")}}
	token := cfg.GetString("slack.token")
	if token != "" {
		notifiers = append(notifiers, &notifier.SlackNotifier{
			Logger:      l.With("component", "slack"),
			SlackSender: slack.New(token),
		})
	}
	if topic := cfg.GetString("telemetry.topic"); topic != "" {
		notifiers = append(notifiers, notifier.TelemetryNotifier{
			Client: clients.MQTT,
			Topic:  topic,
			Logger: l.With("component", "telemetry"),
		})
	}
	a.tasks = append(a.tasks, notifier.Forwarder{
		Publisher: a.Controller,
		Notifier:  notifiers,
		Logger:    l.With("component", "forwarder"),
	})

	// Collector
	coll := &collector.Collector{Publisher: a.Controller, Logger: l.With("component", "collector")}
	if registry != nil {
		registry.MustRegister(coll)
	}
	a.tasks = append(a.tasks, coll)

	// Health Endpoint
	h := health.New(a.Controller, cfg.GetDuration("health.maxAge"), l.With("component", "health"))
	a.tasks = append(a.tasks, h)

	// API server
	apiServer := api.New(a.Store, a.Controller, h, registry, l.With("component", "api"))
	a.tasks = append(a.tasks, httpServer{addr: cfg.GetString("api.addr"), handler: apiServer})

	// Prometheus Server
	if addr := cfg.GetString("exporter.addr"); addr != "" {
		a.tasks = append(a.tasks, httpServer{addr: addr, handler: metricsHandler(registry)})
	}

	// Slackbot
	if token != "" && cfg.GetBool("slack.bot") {
		b := slackbot.New(
			token,
			slackbot.WithName("acpilot "+version),
			slackbot.WithLogger(l.With(slog.String("component", "slackbot"))),
		)
		_ = bot.New(b, a.Store, a.Controller, l.With(slog.String("component", "bot")))
		a.tasks = append(a.tasks, b)
	}

	return &a, nil
}

// NewBackend returns the storage backend for the rule document.
func NewBackend(cfg *viper.Viper) (store.Backend, error) {
	switch backend := cfg.GetString("store.backend"); backend {
	case "file":
		return filestore.FileStore{Path: cfg.GetString("store.path")}, nil
	case "redis":
		return redisstore.New(cfg.GetString("store.redis.addr"), cfg.GetString("store.redis.key")), nil
	default:
		return nil, fmt.Errorf("store.backend: unsupported backend %q", backend)
	}
}

func makeSensor(cfg *viper.Viper, clients Clients, l *slog.Logger) (sensor.Sensor, Task, error) {
	switch sensorType := cfg.GetString("sensor.type"); sensorType {
	case "tado":
		return sensor.TadoSensor{Client: clients.Tado, ZoneID: clients.ZoneID}, nil, nil
	case "mqtt":
		s := sensor.NewMQTTSensor(clients.MQTT, cfg.GetString("sensor.topic"), cfg.GetDuration("sensor.maxAge"), l)
		return s, s, nil
	case "file":
		return sensor.FileSensor{Path: cfg.GetString("sensor.path"), Scale: cfg.GetFloat64("sensor.scale")}, nil, nil
	default:
		return nil, nil, fmt.Errorf("sensor.type: unsupported sensor %q", sensorType)
	}
}

func makeTransport(cfg *viper.Viper, clients Clients, l *slog.Logger) (transport.Transport, error) {
	switch transportType := cfg.GetString("transport.type"); transportType {
	case "tado":
		return &transport.TadoTransport{Client: clients.Tado, ZoneID: clients.ZoneID, Logger: l}, nil
	case "mqtt":
		return transport.Repeater{
			Transport: &transport.StateTransport{
				Client:   clients.MQTT,
				Topic:    cfg.GetString("transport.topic"),
				Retained: cfg.GetBool("transport.retained"),
			},
			Count: cfg.GetInt("transport.repeat"),
			Gap:   cfg.GetDuration("transport.repeatGap"),
		}, nil
	case "ircodes":
		codes, err := transport.LoadCodesFile(cfg.GetString("transport.codes"))
		if err != nil {
			return nil, err
		}
		if !codes.Ready() {
			return nil, fmt.Errorf("transport.codes: %w", transport.ErrNotReady)
		}
		return transport.NewIRTransport(clients.MQTT, cfg.GetString("transport.topic"), codes, cfg.GetDuration("transport.gap"), l), nil
	case "log":
		return &transport.LogTransport{Logger: l}, nil
	default:
		return nil, fmt.Errorf("transport.type: unsupported transport %q", transportType)
	}
}

func metricsHandler(registry prometheus.Registerer) http.Handler {
	if g, ok := registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// Run loads the rules and runs all tasks until ctx is cancelled. If the AC is controlled through a tadoº overlay, the
// overlay is removed on exit.
func (a *App) Run(ctx context.Context) error {
	if err := a.Store.Load(ctx); err != nil {
		a.logger.Warn("failed to persist rules. continuing with rules in memory", "err", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, task := range a.tasks {
		g.Go(func() error { return task.Run(ctx) })
	}
	err := g.Wait()

	if a.release != nil {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if releaseErr := a.release(releaseCtx); releaseErr != nil {
			a.logger.Warn("failed to hand AC back to tado schedule", "err", releaseErr)
		}
	}
	return err
}

type httpServer struct {
	addr    string
	handler http.Handler
}

func (s httpServer) Run(ctx context.Context) error {
	server := http.Server{Addr: s.addr, Handler: s.handler, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server %s: %w", s.addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
