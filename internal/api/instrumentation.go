package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func instrument(h http.Handler, registerer prometheus.Registerer) http.Handler {
	requestCounter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "acpilot",
		Subsystem: "api",
		Name:      "http_requests_total",
		Help:      "total number of http requests",
	},
		[]string{"code", "method"},
	)
	requestDuration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "acpilot",
		Subsystem: "api",
		Name:      "http_request_duration_seconds",
		Help:      "duration of http requests",
	},
		[]string{"code", "method"},
	)
	registerer.MustRegister(requestCounter, requestDuration)

	return promhttp.InstrumentHandlerCounter(requestCounter,
		promhttp.InstrumentHandlerDuration(requestDuration, h),
	)
}
