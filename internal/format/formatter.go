// Package format renders domain values into the outbound row shapes:
// ages in days, display names, canonical web URLs and bounded text.
package format

import (
	"fmt"
	"strings"
	"time"

	"devops-board/internal/config"
	"devops-board/internal/domain"
)

// Unassigned is rendered for work items without an assignee.
const Unassigned = "Unassigned"

// DescriptionLimit bounds formatted description length in runes.
const DescriptionLimit = 400

// Formatter renders domain values for one organization and project.
type Formatter struct {
	BaseURL      string
	Organization string
	Project      string

	// Now is the clock for age calculations. Defaults to time.Now.
	Now func() time.Time
}

// New creates a formatter bound to the configured organization and project.
func New(cfg *config.Config) *Formatter {
	return &Formatter{
		BaseURL:      strings.TrimRight(cfg.DevOps.BaseURL, "/"),
		Organization: cfg.DevOps.Organization,
		Project:      cfg.DevOps.Project,
	}
}

func (f *Formatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// AgeDays returns whole days elapsed since t, computed in UTC and never
// negative. A missing timestamp counts as zero days.
func (f *Formatter) AgeDays(t *time.Time) int {
	if t == nil || t.IsZero() {
		return 0
	}
	days := int(f.now().UTC().Sub(t.UTC()).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// WorkItemURL returns the canonical edit page of a work item.
func (f *Formatter) WorkItemURL(id int) string {
	return fmt.Sprintf("%s/%s/%s/_workitems/edit/%d", f.BaseURL, f.Organization, f.Project, id)
}

// PullRequestURL returns the canonical review page of a pull request.
func (f *Formatter) PullRequestURL(repo string, id int) string {
	return fmt.Sprintf("%s/%s/%s/_git/%s/pullrequest/%d", f.BaseURL, f.Organization, f.Project, repo, id)
}

// Truncate cuts s to at most limit runes. The appended ellipsis counts
// against the limit and multi-byte characters are never split.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// ChangeTypeLabel maps wire change types to display labels. Unknown types
// pass through unchanged.
func ChangeTypeLabel(ct domain.ChangeType) string {
	switch ct {
	case domain.ChangeAdd:
		return "Added"
	case domain.ChangeEdit:
		return "Modified"
	case domain.ChangeDelete:
		return "Deleted"
	case domain.ChangeRename:
		return "Renamed"
	case domain.ChangeSourceRename:
		return "Renamed (source)"
	case domain.ChangeTargetRename:
		return "Renamed (target)"
	default:
		return string(ct)
	}
}

func displayName(id *domain.Identity) string {
	if id == nil {
		return Unassigned
	}
	if id.DisplayName != "" {
		return id.DisplayName
	}
	if id.UniqueName != "" {
		return id.UniqueName
	}
	return Unassigned
}
