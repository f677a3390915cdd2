package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DebugModule exposes the prometheus registry at /debug/metrics.
type DebugModule struct {
	Registry *prometheus.Registry
}

func NewDebugModule(reg *prometheus.Registry) *DebugModule {
	return &DebugModule{Registry: reg}
}

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Runtime collectors may already be present when the registry is shared.
	_ = m.Registry.Register(collectors.NewGoCollector())
	_ = m.Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rg.GET("/debug/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}
