package domain

import "time"

// WorkItem is a read-only snapshot of a backlog work item.
// Optional fields stay nil when the tracking service omits them.
type WorkItem struct {
	ID         int
	Type       string
	Title      string
	State      string
	AssignedTo *Identity
	Effort     *float64
	Priority   *float64
	ChangedAt  *time.Time
}

// Assigned reports whether the work item has a non-empty assignee.
func (w WorkItem) Assigned() bool {
	return w.AssignedTo != nil && (w.AssignedTo.DisplayName != "" || w.AssignedTo.UniqueName != "" || w.AssignedTo.ID != "")
}

// Identity is a person-or-team reference as reported by the tracking service.
type Identity struct {
	ID          string
	DisplayName string
	UniqueName  string
}
