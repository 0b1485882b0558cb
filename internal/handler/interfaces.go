package handler

import (
	"context"

	"devops-board/internal/report"
	"devops-board/internal/service"
)

// SprintServiceInterface defines the interface for sprint backlog operations.
type SprintServiceInterface interface {
	Sprint(ctx context.Context, filter service.SprintFilter) (report.Sprint, error)
}

// ReviewServiceInterface defines the interface for review queue operations.
type ReviewServiceInterface interface {
	Reviews(ctx context.Context, filter service.ReviewFilter) (report.Reviews, error)
}

// ChangesServiceInterface defines the interface for pull request change operations.
type ChangesServiceInterface interface {
	Changes(ctx context.Context, filter service.ChangesFilter) (report.Changes, error)
}
