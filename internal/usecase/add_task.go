package usecase

import (
	"context"
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
type AddTaskInput struct {
	Title string // Task title (required, non-empty)
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task *domain.Task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(projects domain.ProjectRepository, logger domain.Logger) *AddTask {
	return &AddTask{projects: projects, logger: logger}
}

// Execute creates a task inside one unit of work.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	var task *domain.Task
	err := uc.projects.WithProject(false, func(p *domain.Project) error {
		var addErr error
		task, addErr = p.AddTask(in.Title)
		return addErr
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d: %q", task.ID, task.Title))
	}
	return &AddTaskOutput{Task: task}, nil
}
