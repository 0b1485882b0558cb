package query

import (
	"fmt"
	"net/url"

	"devops-board/internal/domain"
)

// PullRequestSearch describes one pull-request search request.
// An empty Status searches active pull requests.
type PullRequestSearch struct {
	ReviewerID string
	Status     domain.PullRequestStatus
}

// Validate checks that the search can be sent to the tracking service.
func (s PullRequestSearch) Validate() error {
	if s.Status != "" && !s.Status.IsFilter() {
		return fmt.Errorf("%w: status %q is not searchable", domain.ErrInvalidFilter, s.Status)
	}
	return nil
}

// Values renders the search as searchCriteria query parameters.
func (s PullRequestSearch) Values() url.Values {
	status := s.Status
	if status == "" {
		status = domain.StatusActive
	}

	vals := url.Values{}
	if s.ReviewerID != "" {
		vals.Set("searchCriteria.reviewerId", s.ReviewerID)
	}
	vals.Set("searchCriteria.status", string(status))
	return vals
}
