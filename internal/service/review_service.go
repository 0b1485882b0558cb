package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"devops-board/internal/config"
	"devops-board/internal/domain"
	"devops-board/internal/format"
	"devops-board/internal/query"
	"devops-board/internal/report"
)

// ReviewSearchStrategy finds pull requests awaiting the given reviewers.
// A strategy may report per-repository failures while continuing with the
// remaining repositories.
type ReviewSearchStrategy interface {
	Search(ctx context.Context, filter ReviewFilter) ([]domain.PullRequest, []report.PartialFailure, error)
}

// ReviewService builds the reviews view.
type ReviewService struct {
	strategy  ReviewSearchStrategy
	formatter *format.Formatter
	log       *zap.SugaredLogger
}

// NewReviewService creates a new reviews service. The search strategy
// follows the configured capability: one project-wide reviewer search when
// the service supports it, a per-repository fan-out otherwise.
func NewReviewService(gateway PullRequestGateway, formatter *format.Formatter, cfg *config.Config, log *zap.SugaredLogger) *ReviewService {
	log = log.Named("service.reviews")

	var strategy ReviewSearchStrategy
	if cfg.DevOps.ProjectReviewerSearch {
		strategy = &projectSearch{gateway: gateway}
	} else {
		strategy = &repoFanOut{gateway: gateway, log: log}
	}

	return &ReviewService{
		strategy:  strategy,
		formatter: formatter,
		log:       log,
	}
}

// ReviewFilter describes one reviews view request. ReviewerIDs match any;
// comparison with reviewer references is case-insensitive.
type ReviewFilter struct {
	ReviewerIDs     []string
	Status          domain.PullRequestStatus
	ExcludeAuthorID string
}

// Reviews builds the reviews view: strategy search, self-review exclusion,
// then ordering by age in days descending. Ties keep fetch order.
func (s *ReviewService) Reviews(ctx context.Context, filter ReviewFilter) (report.Reviews, error) {
	if len(filter.ReviewerIDs) == 0 {
		return report.Reviews{}, fmt.Errorf("%w: at least one reviewer id is required", domain.ErrInvalidFilter)
	}
	if filter.Status != "" && !filter.Status.IsFilter() {
		return report.Reviews{}, fmt.Errorf("%w: status %q is not searchable", domain.ErrInvalidFilter, filter.Status)
	}

	prs, failures, err := s.strategy.Search(ctx, filter)
	if err != nil {
		return report.Reviews{}, err
	}

	rows := make([]format.PullRequestRow, 0, len(prs))
	for _, pr := range prs {
		if filter.ExcludeAuthorID != "" && pr.AuthoredBy(filter.ExcludeAuthorID) {
			continue
		}
		rows = append(rows, s.formatter.PullRequest(pr))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AgeDays > rows[j].AgeDays
	})

	if len(failures) > 0 {
		s.log.Warnw("reviews view is partial", "failedRepositories", len(failures))
	}
	s.log.Infow("reviews view built", "pullRequests", len(rows))

	return report.Reviews{
		Count:        len(rows),
		PullRequests: rows,
		Failures:     failures,
	}, nil
}

type prKey struct {
	repo string
	id   int
}

// projectSearch issues one reviewer-filtered search per requested id across
// the whole project. Reviewer matching is done by the tracking service.
type projectSearch struct {
	gateway PullRequestGateway
}

func (p *projectSearch) Search(ctx context.Context, filter ReviewFilter) ([]domain.PullRequest, []report.PartialFailure, error) {
	var merged []domain.PullRequest
	seen := make(map[prKey]struct{})

	for _, reviewerID := range filter.ReviewerIDs {
		search := query.PullRequestSearch{ReviewerID: reviewerID, Status: filter.Status}
		prs, err := p.gateway.PullRequests(ctx, search)
		if err != nil {
			return nil, nil, err
		}

		for _, pr := range prs {
			key := prKey{repo: pr.Repository.ID, id: pr.ID}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, pr)
		}
	}
	return merged, nil, nil
}

// repoFanOut lists every repository and searches them one at a time,
// keeping pull requests whose reviewer list contains any requested id.
// A failed repository becomes a partial failure instead of aborting the
// remaining ones.
type repoFanOut struct {
	gateway PullRequestGateway
	log     *zap.SugaredLogger
}

func (r *repoFanOut) Search(ctx context.Context, filter ReviewFilter) ([]domain.PullRequest, []report.PartialFailure, error) {
	repos, err := r.gateway.Repositories(ctx)
	if err != nil {
		return nil, nil, err
	}

	var (
		merged   []domain.PullRequest
		failures []report.PartialFailure
	)
	seen := make(map[prKey]struct{})

	for _, repo := range repos {
		prs, err := r.gateway.RepositoryPullRequests(ctx, repo.Name, filter.Status)
		if err != nil {
			r.log.Warnw("repository search failed", "repository", repo.Name, "error", err)
			failures = append(failures, report.PartialFailure{
				Repository: repo.Name,
				Message:    err.Error(),
			})
			continue
		}

		for _, pr := range prs {
			if !pr.HasReviewer(filter.ReviewerIDs...) {
				continue
			}
			key := prKey{repo: pr.Repository.ID, id: pr.ID}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, pr)
		}
	}
	return merged, failures, nil
}
