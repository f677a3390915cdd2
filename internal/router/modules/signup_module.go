package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-signup/internal/interface/http"
)

// SignupModule wires the signup and verification handlers.
// Public: POST /api/signup, GET /api/verify?code=, POST /api/verify
type SignupModule struct {
	Handler *handlers.SignupHandler
}

func NewSignupModule(h *handlers.SignupHandler) *SignupModule {
	return &SignupModule{Handler: h}
}

func (m *SignupModule) Register(rg *gin.RouterGroup) {
	rg.POST("/signup", m.Handler.Signup)
	rg.GET("/verify", m.Handler.VerifyQuery)
	rg.POST("/verify", m.Handler.VerifyConfirm)
}

type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", m.Handler.Healthz)
}
