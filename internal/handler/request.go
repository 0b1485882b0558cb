package handler

import "strings"

// SprintRequest represents query parameters for GET /sprint/workItems.
type SprintRequest struct {
	Team       string `form:"team"`
	States     string `form:"states"`
	Types      string `form:"types"`
	Unassigned bool   `form:"unassigned"`
	AssignedTo string `form:"assignedTo"`
}

// ReviewsRequest represents query parameters for GET /review/pullRequests.
type ReviewsRequest struct {
	ReviewerIDs     string `form:"reviewerId" binding:"required"`
	Status          string `form:"status"`
	ExcludeAuthorID string `form:"excludeAuthorId"`
}

// ChangesRequest represents query parameters for GET /pullRequest/changes.
type ChangesRequest struct {
	Repository     string `form:"repository" binding:"required"`
	PullRequestID  int    `form:"pullRequestId" binding:"required"`
	FilePath       string `form:"filePath"`
	IncludeContent bool   `form:"includeContent"`
}

// splitList turns a comma-separated query value into trimmed entries,
// dropping empty ones.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
