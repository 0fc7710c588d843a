package usecase

import (
	"context"
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// MarkIncompleteInput contains the parameters for resetting a task.
type MarkIncompleteInput struct {
	ID int
}

// MarkIncompleteOutput contains the updated task.
type MarkIncompleteOutput struct {
	Task *domain.Task
}

// MarkIncomplete is the use case for putting a task back to incomplete.
// Like every status command it overwrites unconditionally; there is no
// guard on the current status.
type MarkIncomplete struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewMarkIncomplete creates a new MarkIncomplete use case.
func NewMarkIncomplete(projects domain.ProjectRepository, logger domain.Logger) *MarkIncomplete {
	return &MarkIncomplete{projects: projects, logger: logger}
}

// Execute resets the task status.
func (uc *MarkIncomplete) Execute(_ context.Context, in MarkIncompleteInput) (*MarkIncompleteOutput, error) {
	var task *domain.Task
	err := uc.projects.WithProject(false, func(p *domain.Project) error {
		var setErr error
		task, setErr = p.SetStatus(in.ID, domain.StatusIncomplete)
		return setErr
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("marked #%d incomplete", task.ID))
	}
	return &MarkIncompleteOutput{Task: task}, nil
}
