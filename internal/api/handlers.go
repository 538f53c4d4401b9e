// internal/api/handlers.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "bizstart-workers/internal/common/errors"
	"bizstart-workers/internal/models"
	resolvelocation "bizstart-workers/internal/workers/location/resolve-location"
	matchpolicyfunds "bizstart-workers/internal/workers/policy/match-policy-funds"
	analyzeviability "bizstart-workers/internal/workers/viability/analyze-viability"
	estimatestartupcost "bizstart-workers/internal/workers/viability/estimate-startup-cost"
)

const probeTimeout = 3 * time.Second

// StatusFor maps an envelope onto an HTTP status.
func StatusFor(result *models.Result) int {
	if result.Success {
		return http.StatusOK
	}
	switch apperrors.ErrorCode(result.ErrorCode()) {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeUnknownBusinessType:
		return http.StatusBadRequest
	case apperrors.ErrCodeLocationNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodePolicyFundMatchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respond(c *gin.Context, result *models.Result) {
	c.JSON(StatusFor(result), result)
}

// bind decodes the JSON body into dest. On failure it writes the INVALID_INPUT envelope and
// returns false.
func (s *Server) bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		s.respond(c, models.NewFailure(apperrors.NewInvalidInputError(fmt.Sprintf("parse body: %v", err))))
		return false
	}
	return true
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.opts.RequestTimeout)
}

func (s *Server) AnalyzeViability(c *gin.Context) {
	var input analyzeviability.Input
	if !s.bind(c, &input) {
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	s.respond(c, s.viability.Execute(ctx, &input))
}

func (s *Server) EstimateStartupCost(c *gin.Context) {
	var input estimatestartupcost.Input
	if !s.bind(c, &input) {
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	s.respond(c, s.startupCost.Execute(ctx, &input))
}

func (s *Server) MatchPolicyFunds(c *gin.Context) {
	var input matchpolicyfunds.Input
	if !s.bind(c, &input) {
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	s.respond(c, s.policyFunds.Execute(ctx, &input))
}

func (s *Server) ResolveLocation(c *gin.Context) {
	var input resolvelocation.Input
	if !s.bind(c, &input) {
		return
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	s.respond(c, s.locations.Execute(ctx, &input))
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// Ready runs every probe and reports 503 when any of them fails.
func (s *Server) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	names := make([]string, 0, len(s.opts.Probes))
	for name := range s.opts.Probes {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	status := http.StatusOK
	for _, name := range names {
		if err := s.opts.Probes[name](ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			s.logger.Warn("readiness probe failed", map[string]interface{}{"probe": name, "error": err.Error()})
			continue
		}
		checks[name] = "ok"
	}

	state := "ready"
	if status != http.StatusOK {
		state = "not ready"
	}
	c.JSON(status, gin.H{
		"status": state,
		"checks": checks,
		"time":   time.Now().Format(time.RFC3339),
	})
}
