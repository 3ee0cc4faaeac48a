package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/model"
	pkgErrors "meeting-task-extractor/pkg/errors"
	"meeting-task-extractor/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return listReq{}, sc, err
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, sc, errWrongQuery
	}
	return req, sc, nil
}

func (h *handler) processBulkReq(c *gin.Context) (bulkReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return bulkReq{}, sc, err
	}

	var req bulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errWrongBody
	}
	if err := req.validate(); err != nil {
		return req, sc, h.mapError(err)
	}
	return req, sc, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return updateReq{}, sc, err
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errWrongBody
	}
	req.ID = c.Param("id")
	return req, sc, nil
}
