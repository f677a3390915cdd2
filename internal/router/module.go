package router

import "github.com/gin-gonic/gin"

// Module is one feature surface mounted under /api: signup and verify,
// health, and the optional metrics endpoint.
type Module interface {
	Register(rg *gin.RouterGroup)
}
