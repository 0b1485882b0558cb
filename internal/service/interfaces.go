package service

import (
	"context"

	"devops-board/internal/domain"
	"devops-board/internal/query"
)

// WorkItemGateway is the slice of the tracking service the sprint view
// needs.
type WorkItemGateway interface {
	CurrentIteration(ctx context.Context, team string) (domain.Iteration, error)
	QueryWorkItemIDs(ctx context.Context, wiql string) ([]int, error)
	WorkItems(ctx context.Context, ids []int, fields []string) ([]domain.WorkItem, error)
}

// PullRequestGateway is the slice of the tracking service the reviews view
// needs.
type PullRequestGateway interface {
	PullRequests(ctx context.Context, search query.PullRequestSearch) ([]domain.PullRequest, error)
	Repositories(ctx context.Context) ([]domain.Repository, error)
	RepositoryPullRequests(ctx context.Context, repo string, status domain.PullRequestStatus) ([]domain.PullRequest, error)
}

// ChangeGateway is the slice of the tracking service the changes view
// needs.
type ChangeGateway interface {
	PullRequest(ctx context.Context, repo string, id int) (domain.PullRequest, error)
	PullRequestIterations(ctx context.Context, repo string, prID int) ([]int, error)
	IterationChanges(ctx context.Context, repo string, prID, iterationID int) ([]domain.FileChange, error)
	CommitDiffStat(ctx context.Context, repo, baseCommit, targetCommit string) (domain.DiffStat, error)
	FileContent(ctx context.Context, repo, commit, path string) (string, bool, error)
}
