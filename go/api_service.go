package petstoreserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceAPI serves liveness and metrics endpoints.
type ServiceAPI struct {
	metrics http.Handler
}

// NewServiceAPI creates a ServiceAPI. A nil metrics handler answers /metrics with 404.
func NewServiceAPI(metrics http.Handler) ServiceAPI {
	return ServiceAPI{metrics: metrics}
}

// Get /healthz
func (api *ServiceAPI) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Get /metrics
func (api *ServiceAPI) Metrics(c *gin.Context) {
	if api.metrics == nil {
		respondURLNotFound(c)
		return
	}
	api.metrics.ServeHTTP(c.Writer, c.Request)
}
