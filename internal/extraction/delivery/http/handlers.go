package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-extractor/internal/middleware"
	"voice-task-extractor/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from a transcription
// @Description Splits a speech-to-text transcription into sentences and returns one task per
// @Description task-worthy sentence and mentioned date. Tasks already in existing_tasks are skipped
// @Description and the result is capped by the caller's daily task allowance.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     false "Caller id, defaults to anonymous"
// @Param       body      body   extractReq true  "Transcription"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Daily transcription limit or rate limit reached"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/extractions [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.GetScope(c)
	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "extraction.http.Extract: user=%s: %v", sc.UserID, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newExtractResp(output))
}

// Usage godoc
// @Summary     Today's usage
// @Description Returns the caller's consumption for the current day together with the limits that apply.
// @Tags        Extraction
// @Produce     json
// @Param       X-User-ID header string false "Caller id, defaults to anonymous"
// @Success     200 {object} usageResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/usage [GET]
func (h *handler) Usage(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.GetScope(c)
	output, err := h.uc.Usage(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "extraction.http.Usage: user=%s: %v", sc.UserID, err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newUsageResp(output))
}
