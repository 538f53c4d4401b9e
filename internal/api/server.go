// Package api is the REST facade over the worker operations. Each route runs the same Execute
// path as the corresponding Zeebe job type and returns the result envelope.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bizstart-workers/internal/common/logger"
	"bizstart-workers/internal/models"
	resolvelocation "bizstart-workers/internal/workers/location/resolve-location"
	matchpolicyfunds "bizstart-workers/internal/workers/policy/match-policy-funds"
	analyzeviability "bizstart-workers/internal/workers/viability/analyze-viability"
	estimatestartupcost "bizstart-workers/internal/workers/viability/estimate-startup-cost"
)

type ViabilityExecutor interface {
	Execute(ctx context.Context, input *analyzeviability.Input) *models.Result
}

type StartupCostExecutor interface {
	Execute(ctx context.Context, input *estimatestartupcost.Input) *models.Result
}

type PolicyFundExecutor interface {
	Execute(ctx context.Context, input *matchpolicyfunds.Input) *models.Result
}

type LocationExecutor interface {
	Execute(ctx context.Context, input *resolvelocation.Input) *models.Result
}

// Probe is a readiness check. A nil error means the dependency is usable.
type Probe func(ctx context.Context) error

type Options struct {
	AllowOrigins   []string
	RequestTimeout time.Duration
	// Probes are run by /ready, keyed by dependency name.
	Probes map[string]Probe
}

type Server struct {
	viability   ViabilityExecutor
	startupCost StartupCostExecutor
	policyFunds PolicyFundExecutor
	locations   LocationExecutor

	opts   Options
	logger logger.Logger
}

func NewServer(
	viability ViabilityExecutor,
	startupCost StartupCostExecutor,
	policyFunds PolicyFundExecutor,
	locations LocationExecutor,
	opts Options,
	log logger.Logger,
) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	return &Server{
		viability:   viability,
		startupCost: startupCost,
		policyFunds: policyFunds,
		locations:   locations,
		opts:        opts,
		logger:      log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(s.recovery(), s.requestLogger(), cors.New(s.corsConfig()))
	SetupRoutes(router, s)
	return router
}

// HTTPServer wraps Router in an http.Server listening on addr.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = len(s.opts.AllowOrigins) == 0
	for _, origin := range s.opts.AllowOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
		}
	}
	if !cfg.AllowAllOrigins {
		cfg.AllowOrigins = s.opts.AllowOrigins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	return cfg
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		s.logger.Error("http handler panicked", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"panic": recovered,
		})
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
