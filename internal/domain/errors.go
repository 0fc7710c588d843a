package domain

import "errors"

// Domain errors.
var (
	ErrProjectNotFound    = errors.New("project document not found (run 'taskdeck project init' first)")
	ErrParse              = errors.New("project document is malformed")
	ErrMigrationFailed    = errors.New("schema migration failed")
	ErrTaskNotFound       = errors.New("task not found")
	ErrBranchFormat       = errors.New("branch name does not match the task branch format")
	ErrInvariantViolation = errors.New("duplicate task id for a fresh next_id (corrupted document)")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrEmptyName          = errors.New("project name cannot be empty")
	ErrAlreadyInitialized = errors.New("project already initialized")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
)
