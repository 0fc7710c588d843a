package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// CompleteTaskInput identifies the task to complete by exactly one of a
// task id or a branch name.
type CompleteTaskInput struct {
	Branch string // Branch name to decode (mutually exclusive with ID)
	ID     int    // Task id (0 = unset)
}

// CompleteTaskOutput contains the completed task.
type CompleteTaskOutput struct {
	Task *domain.Task
}

// CompleteTask is the use case for marking a task complete. When a branch
// name is given it is decoded to an id before any registry call; the branch
// carries nothing else of value, its title segment being lossy.
type CompleteTask struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(projects domain.ProjectRepository, logger domain.Logger) *CompleteTask {
	return &CompleteTask{projects: projects, logger: logger}
}

// Execute resolves the task id and sets its status to complete.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	if (in.ID == 0) == (in.Branch == "") {
		return nil, errors.New("exactly one of a task id or a branch name must be given")
	}

	id := in.ID
	if in.Branch != "" {
		parsed, err := domain.ParseBranchTaskID(in.Branch)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	var task *domain.Task
	err := uc.projects.WithProject(false, func(p *domain.Project) error {
		var setErr error
		task, setErr = p.SetStatus(id, domain.StatusComplete)
		return setErr
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("completed #%d", task.ID))
	}
	return &CompleteTaskOutput{Task: task}, nil
}
