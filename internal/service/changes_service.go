package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"devops-board/internal/domain"
	"devops-board/internal/format"
	"devops-board/internal/report"
)

// ChangesService builds the changed-files view of one pull request.
type ChangesService struct {
	gateway   ChangeGateway
	formatter *format.Formatter
	log       *zap.SugaredLogger
}

// NewChangesService creates a new changes view service.
func NewChangesService(gateway ChangeGateway, formatter *format.Formatter, log *zap.SugaredLogger) *ChangesService {
	return &ChangesService{
		gateway:   gateway,
		formatter: formatter,
		log:       log.Named("service.changes"),
	}
}

// ChangesFilter selects the pull request and what to include. When FilePath
// is set only that file is reported and its contents are always fetched.
type ChangesFilter struct {
	Repository     string
	PullRequestID  int
	FilePath       string
	IncludeContent bool
}

// Changes builds the view from the latest iteration of the pull request.
func (s *ChangesService) Changes(ctx context.Context, filter ChangesFilter) (report.Changes, error) {
	if filter.Repository == "" {
		return report.Changes{}, fmt.Errorf("%w: repository is required", domain.ErrInvalidFilter)
	}
	if filter.PullRequestID <= 0 {
		return report.Changes{}, fmt.Errorf("%w: pull request id is required", domain.ErrInvalidFilter)
	}

	pr, err := s.gateway.PullRequest(ctx, filter.Repository, filter.PullRequestID)
	if err != nil {
		return report.Changes{}, err
	}

	iterations, err := s.gateway.PullRequestIterations(ctx, filter.Repository, filter.PullRequestID)
	if err != nil {
		return report.Changes{}, err
	}
	if len(iterations) == 0 {
		return report.Changes{}, fmt.Errorf("%w: no iterations for pull request %d", domain.ErrNotFound, filter.PullRequestID)
	}

	latest := iterations[len(iterations)-1]
	changes, err := s.gateway.IterationChanges(ctx, filter.Repository, filter.PullRequestID, latest)
	if err != nil {
		return report.Changes{}, err
	}

	// Narrow before fetching contents so a path miss costs no requests.
	if filter.FilePath != "" {
		var matched []domain.FileChange
		for _, ch := range changes {
			if ch.Path == filter.FilePath {
				matched = append(matched, ch)
			}
		}
		if len(matched) == 0 {
			return report.Changes{}, fmt.Errorf("%w: file %s not in pull request changes", domain.ErrNotFound, filter.FilePath)
		}
		changes = matched
	}

	var stat domain.DiffStat
	if pr.MergeSourceCommit != "" && pr.MergeTargetCommit != "" {
		stat, err = s.gateway.CommitDiffStat(ctx, filter.Repository, pr.MergeTargetCommit, pr.MergeSourceCommit)
		if err != nil {
			return report.Changes{}, err
		}
	}

	if filter.IncludeContent || filter.FilePath != "" {
		if err := s.fetchContents(ctx, filter.Repository, pr, changes); err != nil {
			return report.Changes{}, err
		}
	}

	rows := make([]format.ChangedFileRow, 0, len(changes))
	for _, ch := range changes {
		rows = append(rows, s.formatter.ChangedFile(ch))
	}

	s.log.Infow("changes view built",
		"repository", filter.Repository,
		"pullRequest", filter.PullRequestID,
		"files", len(rows),
	)

	return report.Changes{
		PullRequest: s.formatter.Detail(pr),
		Commits: report.Commits{
			Source: pr.MergeSourceCommit,
			Target: pr.MergeTargetCommit,
		},
		Summary: report.DiffSummary{
			TotalFiles: len(rows),
			Additions:  stat.Ahead,
			Deletions:  stat.Behind,
		},
		ChangedFiles: rows,
	}, nil
}

// fetchContents loads file contents at the merge-source commit and, for
// edits and deletes, the prior contents at the merge-target commit. Files
// absent at a commit, which is normal for adds and deletes, stay nil.
func (s *ChangesService) fetchContents(ctx context.Context, repo string, pr domain.PullRequest, changes []domain.FileChange) error {
	for i := range changes {
		if pr.MergeSourceCommit != "" {
			content, found, err := s.gateway.FileContent(ctx, repo, pr.MergeSourceCommit, changes[i].Path)
			if err != nil {
				return err
			}
			if found {
				changes[i].Content = &content
			}
		}

		edited := changes[i].ChangeType == domain.ChangeEdit || changes[i].ChangeType == domain.ChangeDelete
		if pr.MergeTargetCommit != "" && edited {
			original, found, err := s.gateway.FileContent(ctx, repo, pr.MergeTargetCommit, changes[i].Path)
			if err != nil {
				return err
			}
			if found {
				changes[i].OriginalContent = &original
			}
		}
	}
	return nil
}
