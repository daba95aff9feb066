package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"stocktracker/internal/metrics"
)

// Options configures NewRouter. Zero values disable the optional parts.
type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// Metrics, when set, instruments every route and is served on MetricsPath.
	Metrics     *metrics.Metrics
	MetricsPath string
}

// NewRouter wires the handlers and middleware into a gin engine.
func NewRouter(quotes Quoter, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	// Logging and metrics sit outside Recovery so panics are still observed.
	r.Use(RequestID(), AccessLog(logger))
	if opts.Metrics != nil {
		r.Use(Metrics(opts.Metrics))
	}
	r.Use(Recovery(logger), CORS(opts.AllowedOrigins), Gzip(), ErrorMapper(logger))

	h := NewHandler(quotes)
	r.GET("/", h.Index)
	r.GET("/api", h.Index)
	r.GET("/api/stock/:symbol", h.GetStock)
	r.GET("/healthz", h.Health)
	if opts.Metrics != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(opts.Metrics.Handler()))
	}
	r.NoRoute(notFound)

	return r
}
