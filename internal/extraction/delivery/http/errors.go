package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/extraction"
	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/pkg/response"
)

// respondError translates use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, extraction.ErrEmptyTranscription),
		errors.Is(err, extraction.ErrTranscriptionTooLong):
		response.Error(c, err, nil)
	case errors.Is(err, extraction.ErrTranscriptionLimitReached):
		response.TooManyRequests(c, err, h.remaining(c))
	default:
		response.InternalError(c, err)
	}
}

// remaining reports the caller's allowance alongside a 429, best effort.
func (h *handler) remaining(c *gin.Context) any {
	out, err := h.uc.Usage(c.Request.Context(), middleware.GetScope(c))
	if err != nil {
		return nil
	}
	return newUsageResp(out)
}
