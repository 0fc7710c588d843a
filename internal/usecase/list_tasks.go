package usecase

import (
	"context"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// ListTasksOutput contains the ordered task list.
type ListTasksOutput struct {
	ProjectName string
	Abbv        string
	Tasks       []*domain.Task // Ascending by id
}

// ListTasks is the use case for listing all tasks.
type ListTasks struct {
	projects domain.ProjectRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(projects domain.ProjectRepository) *ListTasks {
	return &ListTasks{projects: projects}
}

// Execute reads the ordered task list without writing anything back.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	var out ListTasksOutput
	err := uc.projects.WithProject(true, func(p *domain.Project) error {
		out = ListTasksOutput{
			ProjectName: p.Name,
			Abbv:        p.Abbv,
			Tasks:       p.OrderedTasks(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
