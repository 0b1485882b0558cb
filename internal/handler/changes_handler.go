package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devops-board/internal/service"
)

// ChangesHandler handles pull request change HTTP requests.
type ChangesHandler struct {
	service ChangesServiceInterface
}

// NewChangesHandler creates a new ChangesHandler.
func NewChangesHandler(service ChangesServiceInterface) *ChangesHandler {
	return &ChangesHandler{service: service}
}

// Changes handles GET /pullRequest/changes.
func (h *ChangesHandler) Changes(c *gin.Context) {
	var req ChangesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, bindingMessage(req, err))
		return
	}

	result, err := h.service.Changes(c.Request.Context(), service.ChangesFilter{
		Repository:     req.Repository,
		PullRequestID:  req.PullRequestID,
		FilePath:       req.FilePath,
		IncludeContent: req.IncludeContent,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
