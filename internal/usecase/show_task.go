package usecase

import (
	"context"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	ID int
}

// ShowTaskOutput contains the task and its derived branch name.
type ShowTaskOutput struct {
	Task   *domain.Task
	Branch string // Branch the task would use; lossy, display only
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct {
	projects domain.ProjectRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(projects domain.ProjectRepository) *ShowTask {
	return &ShowTask{projects: projects}
}

// Execute fetches the task by id.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	var out ShowTaskOutput
	err := uc.projects.WithProject(true, func(p *domain.Project) error {
		task, getErr := p.GetTask(in.ID)
		if getErr != nil {
			return getErr
		}
		out = ShowTaskOutput{
			Task:   task,
			Branch: domain.BranchName(p.Abbv, task.ID, task.Title),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
