package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route resolves the caller scope and is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.Scope())

	rg.POST("/extractions", h.Extract)
	rg.GET("/usage", h.Usage)
}
