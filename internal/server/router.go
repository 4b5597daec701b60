package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizval-service/internal/common/logger"
	"bizval-service/internal/common/metrics"
	"bizval-service/internal/valuation"
)

// NewRouter assembles the HTTP surface: the valuation endpoint, health, and
// Prometheus metrics. The valuation route accepts POST only; every other
// verb gets the fixed 405 body. A recovery boundary guarantees exactly one
// terminal response even when a pipeline stage panics.
func NewRouter(h *valuation.Handler, appName, appVersion string, log logger.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic recovered in request pipeline", map[string]interface{}{
			"panic": recovered,
			"path":  c.Request.URL.Path,
		})
		metrics.ValuationRequests.WithLabelValues("500").Inc()
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		metrics.ValuationRequests.WithLabelValues("405").Inc()
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.POST("/api/v1/valuations", h.Handle)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": appName,
			"version": appVersion,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
