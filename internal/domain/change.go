package domain

// ChangeType classifies how a file changed within a pull request iteration.
type ChangeType string

// Change type constants as reported by the tracking service.
const (
	ChangeAdd          ChangeType = "add"
	ChangeEdit         ChangeType = "edit"
	ChangeDelete       ChangeType = "delete"
	ChangeRename       ChangeType = "rename"
	ChangeSourceRename ChangeType = "sourceRename"
	ChangeTargetRename ChangeType = "targetRename"
)

// FileChange is one changed file within a pull request.
// Content fields stay nil unless file contents were requested.
type FileChange struct {
	Path         string
	ChangeType   ChangeType
	OriginalPath string

	Content         *string
	OriginalContent *string
}

// DiffStat summarizes how far a pull request's source branch has diverged
// from its target branch.
type DiffStat struct {
	Ahead  int
	Behind int
}
