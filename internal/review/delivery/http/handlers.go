package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/review"
	"meeting-task-extractor/pkg/response"
)

// Create godoc
// @Summary     Start a review draft
// @Description Extracts task candidates from a transcript and stores them as an editable draft.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Transcript"
// @Success     201 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "Transcript too long"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Model call failed"
// @Router      /api/v1/drafts [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	draft, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	resp := h.newDraftResp(sc, draft)
	if resp.Count == 0 {
		resp.Message = noTasksMessage
	}
	response.Created(c, resp)
}

// Get godoc
// @Summary     Get a review draft
// @Tags        Drafts
// @Produce     json
// @Param       id path string true "Draft ID"
// @Success     200 {object} draftResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	draft, err := h.uc.Get(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDraftResp(sc, draft))
}

// EditItem godoc
// @Summary     Edit one field of a draft item
// @Description Field is one of description, assignee, due_date_text, priority. Values are validated on approval.
// @Tags        Drafts
// @Accept      json
// @Produce     json
// @Param       id    path string      true "Draft ID"
// @Param       index path int         true "Item index"
// @Param       body  body editItemReq true "Field and value"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id}/items/{index} [PATCH]
func (h *handler) EditItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, index, sc, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	draft, err := h.uc.EditItem(ctx, sc, review.EditItemInput{
		DraftID: c.Param("id"),
		Index:   index,
		Field:   req.Field,
		Value:   req.Value,
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.EditItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDraftResp(sc, draft))
}

// RemoveItem godoc
// @Summary     Remove a draft item
// @Description Later items shift down by one.
// @Tags        Drafts
// @Produce     json
// @Param       id    path string true "Draft ID"
// @Param       index path int    true "Item index"
// @Success     200 {object} draftResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id}/items/{index} [DELETE]
func (h *handler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	index, err := h.processIndex(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	draft, err := h.uc.RemoveItem(ctx, sc, c.Param("id"), index)
	if err != nil {
		h.l.Warnf(ctx, "uc.RemoveItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDraftResp(sc, draft))
}

// AppendItem godoc
// @Summary     Append a blank draft item
// @Tags        Drafts
// @Produce     json
// @Param       id path string true "Draft ID"
// @Success     200 {object} draftResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id}/items [POST]
func (h *handler) AppendItem(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	draft, err := h.uc.AppendItem(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.AppendItem: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDraftResp(sc, draft))
}

// Approve godoc
// @Summary     Approve a draft
// @Description Creates one task per item and discards the draft. Items that fail validation are skipped.
// @Tags        Drafts
// @Produce     json
// @Param       id path string true "Draft ID"
// @Success     201 {object} approveResp
// @Failure     400 {object} response.Resp "Empty draft"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id}/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Approve(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Approve: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newApproveResp(out))
}

// Cancel godoc
// @Summary     Discard a draft
// @Tags        Drafts
// @Param       id path string true "Draft ID"
// @Success     204 "No Content"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/drafts/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Cancel(ctx, sc, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.NoContent(c)
}
