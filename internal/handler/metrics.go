package handler

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// Metrics holds all Prometheus collectors for the TRUSTMEBRO backend.
var Metrics = struct {
	PapersGenerated  *prometheus.CounterVec
	VotesTotal       prometheus.Counter
	ReportsTotal     prometheus.Counter
	AutoHiddenTotal  prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	DBConnsInUse     prometheus.GaugeFunc
	DBConnsIdle      prometheus.GaugeFunc
}{}

// InitMetrics registers all Prometheus metrics. Call once at startup.
func InitMetrics(db *sql.DB) {
	Metrics.PapersGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustmebro_papers_generated_total",
			Help: "Total papers generated, by length tier.",
		},
		[]string{"length"},
	)

	Metrics.VotesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trustmebro_votes_total",
			Help: "Total votes submitted.",
		},
	)

	Metrics.ReportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trustmebro_reports_total",
			Help: "Total reports submitted.",
		},
	)

	Metrics.AutoHiddenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "trustmebro_posts_auto_hidden_total",
			Help: "Total posts auto-hidden by report thresholds.",
		},
	)

	Metrics.RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustmebro_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	Metrics.RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "trustmebro_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	if db != nil {
		Metrics.DBConnsInUse = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "trustmebro_db_connections_in_use",
				Help: "Number of database connections currently in use.",
			},
			func() float64 {
				return float64(db.Stats().InUse)
			},
		)

		Metrics.DBConnsIdle = prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "trustmebro_db_connections_idle",
				Help: "Number of idle database connections.",
			},
			func() float64 {
				return float64(db.Stats().Idle)
			},
		)

		prometheus.MustRegister(Metrics.DBConnsInUse)
		prometheus.MustRegister(Metrics.DBConnsIdle)
	}

	prometheus.MustRegister(
		Metrics.PapersGenerated,
		Metrics.VotesTotal,
		Metrics.ReportsTotal,
		Metrics.AutoHiddenTotal,
		Metrics.RequestDuration,
		Metrics.RequestsInFlight,
	)
}

// MetricsMiddleware records request duration and in-flight count for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Don't instrument the /metrics endpoint itself
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy path and method into owned strings BEFORE c.Next() — Fiber
		// returns slices backed by the fasthttp buffer which can be reused
		// or overwritten by handlers (especially fasthttpadaptor).
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))
		endpoint := sanitizeEndpoint(path)

		Metrics.RequestsInFlight.Inc()
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())

		Metrics.RequestDuration.WithLabelValues(endpoint, method, status).Observe(duration)
		Metrics.RequestsInFlight.Dec()

		return err
	}
}

// sanitizeEndpoint normalizes paths to avoid cardinality explosion.
func sanitizeEndpoint(path string) string {
	switch {
	case len(path) > 7 && path[:7] == "/paper/":
		return "/paper/:paperId"
	case len(path) > 3 && path[:3] == "/g/":
		return "/g/:postId"
	case len(path) > 6 && path[:6] == "/vote/":
		return "/vote/:postId"
	case len(path) > 8 && path[:8] == "/report/":
		return "/report/:postId"
	case len(path) > 9 && path[:9] == "/publish/":
		return "/publish/:paperId"
	case len(path) > 7 && path[:7] == "/share/":
		return "/share/:token"
	case len(path) > 14 && path[:14] == "/create_share/":
		return "/create_share/:paperId"
	default:
		return path
	}
}

// MetricsHandler serves the Prometheus /metrics endpoint via Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
