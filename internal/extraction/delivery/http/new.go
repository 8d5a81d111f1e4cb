package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Usage(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extraction.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
