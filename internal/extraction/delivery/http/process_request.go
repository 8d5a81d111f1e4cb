package http

import (
	"errors"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
)

// processExtractReq binds and validates the extraction request body.
// Bodies above maxBodyBytes are refused before they are decoded.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	c.Request.Body = stdhttp.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *stdhttp.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, errBodyTooLarge
		}
		return req, err
	}
	return req, req.validate()
}
