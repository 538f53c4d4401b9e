// internal/api/routes.go
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, s *Server) {
	router.GET("/health", s.Health)
	router.GET("/ready", s.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/viability", s.AnalyzeViability)
		v1.POST("/startup-cost", s.EstimateStartupCost)
		v1.POST("/policy-funds", s.MatchPolicyFunds)
		v1.POST("/locations/resolve", s.ResolveLocation)
	}
}
