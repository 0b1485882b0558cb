package domain

import "time"

// Iteration is a time-boxed work period configured for a team.
// At most one iteration is "current" for a team at any point in time.
type Iteration struct {
	ID         string
	Name       string
	Path       string
	StartDate  *time.Time
	FinishDate *time.Time
	TimeFrame  string
}
