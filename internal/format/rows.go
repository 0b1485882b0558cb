package format

import (
	"time"

	"devops-board/internal/domain"
)

// WorkItemRow is one formatted work item of the sprint view.
type WorkItemRow struct {
	ID              int      `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	State           string   `json:"state"`
	AssignedTo      string   `json:"assignedTo"`
	Effort          *float64 `json:"effort"`
	Priority        *float64 `json:"priority"`
	DaysSinceChange int      `json:"daysSinceChange"`
	WebURL          string   `json:"webUrl"`
}

// WorkItem renders one work item.
func (f *Formatter) WorkItem(item domain.WorkItem) WorkItemRow {
	return WorkItemRow{
		ID:              item.ID,
		Type:            item.Type,
		Title:           item.Title,
		State:           item.State,
		AssignedTo:      displayName(item.AssignedTo),
		Effort:          item.Effort,
		Priority:        item.Priority,
		DaysSinceChange: f.AgeDays(item.ChangedAt),
		WebURL:          f.WorkItemURL(item.ID),
	}
}

// PullRequestRow is one formatted pull request of the reviews view.
type PullRequestRow struct {
	ID           int           `json:"id"`
	Repository   string        `json:"repository"`
	Title        string        `json:"title"`
	Author       string        `json:"author"`
	AuthorID     string        `json:"authorId"`
	Status       string        `json:"status"`
	SourceBranch string        `json:"sourceBranch"`
	TargetBranch string        `json:"targetBranch"`
	CreatedDate  *time.Time    `json:"createdDate"`
	AgeDays      int           `json:"ageDays"`
	IsDraft      bool          `json:"isDraft"`
	Reviewers    []ReviewerRow `json:"reviewers"`
	WebURL       string        `json:"webUrl"`
}

// ReviewerRow is one reviewer of a formatted pull request.
type ReviewerRow struct {
	Name       string `json:"name"`
	Vote       int    `json:"vote"`
	IsRequired bool   `json:"isRequired"`
}

// PullRequest renders one pull request.
func (f *Formatter) PullRequest(pr domain.PullRequest) PullRequestRow {
	reviewers := make([]ReviewerRow, 0, len(pr.Reviewers))
	for _, r := range pr.Reviewers {
		reviewers = append(reviewers, ReviewerRow{
			Name:       r.DisplayName,
			Vote:       r.Vote,
			IsRequired: r.IsRequired,
		})
	}

	return PullRequestRow{
		ID:           pr.ID,
		Repository:   pr.Repository.Name,
		Title:        pr.Title,
		Author:       pr.Author.DisplayName,
		AuthorID:     pr.Author.ID,
		Status:       string(pr.Status),
		SourceBranch: pr.SourceBranch,
		TargetBranch: pr.TargetBranch,
		CreatedDate:  pr.CreatedAt,
		AgeDays:      f.AgeDays(pr.CreatedAt),
		IsDraft:      pr.IsDraft,
		Reviewers:    reviewers,
		WebURL:       f.PullRequestURL(pr.Repository.Name, pr.ID),
	}
}

// PullRequestDetail heads the changes view. The description is bounded.
type PullRequestDetail struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Author       string `json:"author"`
	SourceBranch string `json:"sourceBranch"`
	TargetBranch string `json:"targetBranch"`
	Status       string `json:"status"`
	IsDraft      bool   `json:"isDraft"`
}

// Detail renders the pull request header of the changes view.
func (f *Formatter) Detail(pr domain.PullRequest) PullRequestDetail {
	return PullRequestDetail{
		ID:           pr.ID,
		Title:        pr.Title,
		Description:  Truncate(pr.Description, DescriptionLimit),
		Author:       pr.Author.DisplayName,
		SourceBranch: pr.SourceBranch,
		TargetBranch: pr.TargetBranch,
		Status:       string(pr.Status),
		IsDraft:      pr.IsDraft,
	}
}

// ChangedFileRow is one formatted file change. Contents appear only when
// they were requested.
type ChangedFileRow struct {
	Path         string `json:"path"`
	ChangeType   string `json:"changeType"`
	OriginalPath string `json:"originalPath,omitempty"`

	Content         *string `json:"content,omitempty"`
	OriginalContent *string `json:"originalContent,omitempty"`
}

// ChangedFile renders one file change.
func (f *Formatter) ChangedFile(ch domain.FileChange) ChangedFileRow {
	return ChangedFileRow{
		Path:            ch.Path,
		ChangeType:      ChangeTypeLabel(ch.ChangeType),
		OriginalPath:    ch.OriginalPath,
		Content:         ch.Content,
		OriginalContent: ch.OriginalContent,
	}
}
