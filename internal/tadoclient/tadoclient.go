// Package tadoclient creates the tadoº API client used by the tado sensor and transport.
package tadoclient

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/clambin/tado"
	"github.com/prometheus/client_golang/prometheus"
)

// Config holds the tadoº account credentials.
type Config struct {
	Username     string
	Password     string
	ClientSecret string
}

// New logs into the tadoº API. If registry is not nil, every API call is recorded as acpilot_tado_http_* metrics.
func New(cfg Config, registry prometheus.Registerer) (*tado.APIClient, error) {
	c, err := tado.New(cfg.Username, cfg.Password, cfg.ClientSecret)
	if err != nil {
		return nil, fmt.Errorf("tado: %w", err)
	}
	if registry != nil {
		m := callMetrics()
		if err = registry.Register(m); err != nil {
			return nil, fmt.Errorf("tado: metrics: %w", err)
		}
		c.HTTPClient = &http.Client{Transport: roundtripper.New(
			roundtripper.WithRequestMetrics(m),
			roundtripper.WithRoundTripper(c.HTTPClient.Transport),
		)}
	}
	return c, nil
}

func callMetrics() metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace: "acpilot",
		Subsystem: "tado",
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			return request.Method, pathLabel(request.URL.Path), strconv.Itoa(code)
		},
	})
}

// pathLabel drops the home and zone IDs from a tadoº API path, so the sensor's state calls
// and the transport's overlay calls each get one label value.
//
//	/api/v2/homes/123/zones/1/overlay -> /api/v2/homes/zones/overlay
func pathLabel(path string) string {
	if path == "" {
		return "/"
	}
	const homes = "/api/v2/homes"
	rest, ok := strings.CutPrefix(path, homes+"/")
	if !ok {
		return path
	}
	// rest: <home id>[/zones/<zone id>]/...
	parts := strings.Split(rest, "/")[1:]
	if len(parts) >= 2 && parts[0] == "zones" {
		parts = append(parts[:1], parts[2:]...)
	}
	return strings.Join(append([]string{homes}, parts...), "/")
}
