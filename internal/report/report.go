// Package report defines the payload shapes crossing the outbound boundary.
// Every view produces either its success document or a Failure, nothing
// else.
package report

import (
	"devops-board/internal/format"
)

// Sprint is the sprint view success payload.
type Sprint struct {
	Iteration IterationInfo        `json:"iteration"`
	Team      string               `json:"team"`
	AreaPath  string               `json:"areaPath"`
	Count     int                  `json:"count"`
	WorkItems []format.WorkItemRow `json:"workItems"`
}

// IterationInfo names the iteration a sprint payload was built from.
type IterationInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Reviews is the reviews view success payload. Failures lists repositories
// that could not be searched while the rest of the fan-out continued; it is
// empty for the project-wide search.
type Reviews struct {
	Count        int                     `json:"count"`
	PullRequests []format.PullRequestRow `json:"pullRequests"`
	Failures     []PartialFailure        `json:"failures,omitempty"`
}

// Partial reports whether some repositories failed while others succeeded.
func (r Reviews) Partial() bool {
	return len(r.Failures) > 0
}

// PartialFailure records one repository whose search failed.
type PartialFailure struct {
	Repository string `json:"repository"`
	Message    string `json:"message"`
}

// Changes is the changes view success payload.
type Changes struct {
	PullRequest  format.PullRequestDetail `json:"pullRequest"`
	Commits      Commits                  `json:"commits"`
	Summary      DiffSummary              `json:"summary"`
	ChangedFiles []format.ChangedFileRow  `json:"changedFiles"`
}

// Commits holds the merge commit ids the changes were computed against.
type Commits struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// DiffSummary counts changed files and commit divergence.
type DiffSummary struct {
	TotalFiles int `json:"totalFiles"`
	Additions  int `json:"additions"`
	Deletions  int `json:"deletions"`
}
