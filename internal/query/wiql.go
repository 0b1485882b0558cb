// Package query builds the query texts and parameter sets sent to the
// tracking service: WIQL statements for work items and searchCriteria
// parameters for pull requests.
package query

import (
	"fmt"
	"strings"

	"devops-board/internal/domain"
)

// workItemFields is the field list requested by every sprint query. The
// same list drives the WIQL SELECT clause and the detail fetch.
var workItemFields = []string{
	"System.Id",
	"System.Title",
	"System.State",
	"System.WorkItemType",
	"System.AssignedTo",
	"Microsoft.VSTS.Scheduling.Effort",
	"Microsoft.VSTS.Common.BacklogPriority",
	"System.ChangedDate",
}

// WorkItemFields returns the field reference names fetched for sprint views.
func WorkItemFields() []string {
	fields := make([]string, len(workItemFields))
	copy(fields, workItemFields)
	return fields
}

// WorkItemFilter describes one sprint work-item query.
type WorkItemFilter struct {
	Project       string
	Team          string
	IterationPath string

	// AreaPath defaults to Project\Team when empty.
	AreaPath string
	// Types defaults to Product Backlog Item and Spike when empty.
	Types []string

	States     []string
	Unassigned bool
	AssignedTo string
}

// Validate checks that the filter can produce a well-formed query.
// Unassigned and AssignedTo contradict each other and are rejected here,
// before any request is issued.
func (f WorkItemFilter) Validate() error {
	if f.Project == "" {
		return fmt.Errorf("%w: project is required", domain.ErrInvalidFilter)
	}
	if f.Team == "" && f.AreaPath == "" {
		return fmt.Errorf("%w: team or area path is required", domain.ErrInvalidFilter)
	}
	if f.IterationPath == "" {
		return fmt.Errorf("%w: iteration path is required", domain.ErrInvalidFilter)
	}
	if f.Unassigned && f.AssignedTo != "" {
		return fmt.Errorf("%w: unassigned and assignedTo are mutually exclusive", domain.ErrInvalidFilter)
	}
	return nil
}

// BuildWIQL renders the filter as a WIQL statement. All string literals are
// single-quoted with embedded quotes doubled.
func (f WorkItemFilter) BuildWIQL() (string, error) {
	if err := f.Validate(); err != nil {
		return "", err
	}

	area := f.AreaPath
	if area == "" {
		area = f.Project + `\` + f.Team
	}
	types := f.Types
	if len(types) == 0 {
		types = []string{"Product Backlog Item", "Spike"}
	}

	where := []string{
		"[System.TeamProject] = " + quote(f.Project),
		"[System.AreaPath] UNDER " + quote(area),
		"[System.IterationPath] = " + quote(f.IterationPath),
		"[System.WorkItemType] IN (" + quoteList(types) + ")",
	}
	if len(f.States) > 0 {
		where = append(where, "[System.State] IN ("+quoteList(f.States)+")")
	}
	switch {
	case f.Unassigned:
		where = append(where, "([System.AssignedTo] = '' OR [System.AssignedTo] IS NULL)")
	case f.AssignedTo != "":
		where = append(where, "[System.AssignedTo] = "+quote(f.AssignedTo))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	for i, field := range workItemFields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("[" + field + "]")
	}
	b.WriteString(" FROM WorkItems WHERE ")
	b.WriteString(strings.Join(where, " AND "))
	b.WriteString(" ORDER BY [Microsoft.VSTS.Common.BacklogPriority] ASC, [System.ChangedDate] DESC")

	return b.String(), nil
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return strings.Join(quoted, ", ")
}
