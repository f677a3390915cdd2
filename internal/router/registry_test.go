package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/oksasatya/go-ddd-signup/internal/router/modules"
	"github.com/oksasatya/go-ddd-signup/pkg/metrics"
)

type pingModule struct{}

func (pingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("mw")) })
}

func TestRegistry_RegisterAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := NewRegistry(gin.New())
	reg.Use(func(c *gin.Context) { c.Set("mw", "seen"); c.Next() })
	reg.Add(pingModule{})
	reg.RegisterAll()

	w := httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "seen", w.Body.String())
}

func TestDebugModule_ServesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	promReg := prometheus.NewRegistry()
	metrics.NewSignup("signup", promReg).ObserveSignup(metrics.OutcomeSuccess)

	reg := NewRegistry(gin.New())
	reg.Add(modules.NewDebugModule(promReg))
	reg.RegisterAll()

	w := httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/debug/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `signup_signups_total{outcome="success"} 1`)
}
