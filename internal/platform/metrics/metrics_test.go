package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(m *HTTP) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/pet/:petId", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(m.Handler()))
	return router
}

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := NewHTTP()
	router := newRouter(m)

	for _, path := range []string{"/pet/1", "/pet/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "petstore_http_requests_total" {
			continue
		}
		for _, sample := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range sample.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			counts[labels["route"]+" "+labels["code"]] = sample.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, counts["/pet/:petId 200"])
	assert.Equal(t, 1.0, counts["unmatched 404"])
}

func TestHandlerExposesTextFormat(t *testing.T) {
	m := NewHTTP()
	router := newRouter(m)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pet/1", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "petstore_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestMiddlewareReleasesInFlightOnPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewHTTP()
	router := gin.New()
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, _ any) {
		c.AbortWithStatus(http.StatusInternalServerError)
	}), m.Middleware())
	router.GET("/pet/:petId", func(c *gin.Context) { panic("handler failed") })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pet/1", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	found := false
	for _, family := range families {
		if family.GetName() != "petstore_http_requests_in_flight" {
			continue
		}
		found = true
		require.Len(t, family.GetMetric(), 1)
		assert.Equal(t, 0.0, family.GetMetric()[0].GetGauge().GetValue())
	}
	assert.True(t, found)
}
