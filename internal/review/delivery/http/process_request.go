package http

import (
	"strconv"

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

func (h *handler) processCreateReq(c *gin.Context) (createReq, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return createReq{}, sc, err
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errWrongBody
	}
	return req, sc, req.validate()
}

func (h *handler) processIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, errWrongIndex
	}
	return index, nil
}

func (h *handler) processEditReq(c *gin.Context) (editItemReq, int, model.Scope, error) {
	sc, err := h.processScope(c)
	if err != nil {
		return editItemReq{}, 0, sc, err
	}
	index, err := h.processIndex(c)
	if err != nil {
		return editItemReq{}, 0, sc, err
	}

	var req editItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, index, sc, errWrongBody
	}
	return req, index, sc, nil
}
