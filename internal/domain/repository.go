package domain

// Repository is a git repository reference within a project.
type Repository struct {
	ID      string
	Name    string
	Project string
}
