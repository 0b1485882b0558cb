package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devops-board/internal/domain"
	"devops-board/internal/service"
)

// ReviewHandler handles review queue HTTP requests.
type ReviewHandler struct {
	service ReviewServiceInterface
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// Reviews handles GET /review/pullRequests.
func (h *ReviewHandler) Reviews(c *gin.Context) {
	var req ReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, bindingMessage(req, err))
		return
	}

	result, err := h.service.Reviews(c.Request.Context(), service.ReviewFilter{
		ReviewerIDs:     splitList(req.ReviewerIDs),
		Status:          domain.PullRequestStatus(req.Status),
		ExcludeAuthorID: req.ExcludeAuthorID,
	})
	if err != nil {
		Fail(c, err)
		return
	}

	// Partial results still answer with 200; the failures ride along in
	// the document so the caller can decide what to do with them.
	c.JSON(http.StatusOK, result)
}
