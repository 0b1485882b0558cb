package domain

import (
	"fmt"
	"strings"
	"time"
)

// PullRequestStatus represents the status of a pull request.
type PullRequestStatus string

// Pull request status constants. StatusAll and StatusNotSet are accepted
// only as search filter values and never appear on a fetched pull request.
const (
	StatusActive    PullRequestStatus = "active"
	StatusCompleted PullRequestStatus = "completed"
	StatusAbandoned PullRequestStatus = "abandoned"
	StatusNotSet    PullRequestStatus = "notSet"
	StatusAll       PullRequestStatus = "all"
)

// NewPullRequestStatus creates a PullRequestStatus with validation.
// Returns an error if the value is not usable as a search filter.
func NewPullRequestStatus(s string) (PullRequestStatus, error) {
	status := PullRequestStatus(s)
	if !status.IsFilter() {
		return "", fmt.Errorf("invalid pull request status: %s (must be one of: %s, %s, %s, %s)",
			s, StatusActive, StatusCompleted, StatusAbandoned, StatusAll)
	}
	return status, nil
}

// IsFilter checks if the status is a valid search filter value.
func (s PullRequestStatus) IsFilter() bool {
	return s == StatusActive || s == StatusCompleted || s == StatusAbandoned || s == StatusAll
}

// PullRequest is a read-only snapshot of a pull request.
// The identifier is unique within its repository, not within the project.
type PullRequest struct {
	ID           int
	Repository   Repository
	Title        string
	Description  string
	Author       Identity
	Status       PullRequestStatus
	IsDraft      bool
	SourceBranch string
	TargetBranch string
	CreatedAt    *time.Time
	Reviewers    []Reviewer

	// Merge commit ids are populated only by a single-PR detail fetch.
	MergeSourceCommit string
	MergeTargetCommit string
}

// HasReviewer reports whether any of the given identifiers appears in the
// reviewer list. Identifiers are compared case-insensitively.
func (pr PullRequest) HasReviewer(ids ...string) bool {
	for _, r := range pr.Reviewers {
		for _, id := range ids {
			if strings.EqualFold(r.ID, id) {
				return true
			}
		}
	}
	return false
}

// AuthoredBy reports whether the pull request was created by the given
// identifier. Comparison is case-insensitive.
func (pr PullRequest) AuthoredBy(id string) bool {
	return id != "" && strings.EqualFold(pr.Author.ID, id)
}

// Reviewer is one entry of a pull request's reviewer list. The same
// reference appears at most once per list.
type Reviewer struct {
	ID          string
	DisplayName string
	UniqueName  string
	Vote        int // -10 rejected .. +10 approved, 0 = no vote
	IsRequired  bool
}
