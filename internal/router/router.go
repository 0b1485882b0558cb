package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devops-board/internal/handler"
)

// SetupRoutes configures all API routes.
func SetupRoutes(
	sprintHandler *handler.SprintHandler,
	reviewHandler *handler.ReviewHandler,
	changesHandler *handler.ChangesHandler,
) *gin.Engine {
	r := gin.Default()

	// Sprint backlog endpoint
	r.GET("/sprint/workItems", sprintHandler.Sprint)

	// Review queue endpoint
	r.GET("/review/pullRequests", reviewHandler.Reviews)

	// Changed files endpoint
	r.GET("/pullRequest/changes", changesHandler.Changes)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
