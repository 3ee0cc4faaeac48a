package http

import (
	"github.com/gin-gonic/gin"

	"meeting-task-extractor/internal/model"
	pkgErrors "meeting-task-extractor/pkg/errors"
	"meeting-task-extractor/pkg/scope"
)

func (h *handler) processExtractReq(c *gin.Context) (extractReq, model.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return extractReq{}, model.Scope{}, pkgErrors.ErrUnauthorized
	}

	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, sc, errWrongBody
	}
	return req, sc, req.validate()
}
