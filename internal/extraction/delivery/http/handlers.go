package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from a transcript
// @Description Sends the transcript to the language model and returns validated task candidates. Nothing is persisted.
// @Tags        Extraction
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Transcript"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "Transcript too long"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Model call failed"
// @Router      /api/v1/extractions [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil && !errors.Is(err, extraction.ErrNoTasksFound) {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}
