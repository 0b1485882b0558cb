package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devops-board/internal/service"
)

// SprintHandler handles sprint backlog HTTP requests.
type SprintHandler struct {
	service SprintServiceInterface
}

// NewSprintHandler creates a new SprintHandler.
func NewSprintHandler(service SprintServiceInterface) *SprintHandler {
	return &SprintHandler{service: service}
}

// Sprint handles GET /sprint/workItems.
func (h *SprintHandler) Sprint(c *gin.Context) {
	var req SprintRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, bindingMessage(req, err))
		return
	}

	result, err := h.service.Sprint(c.Request.Context(), service.SprintFilter{
		Team:       req.Team,
		States:     splitList(req.States),
		Types:      splitList(req.Types),
		Unassigned: req.Unassigned,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
