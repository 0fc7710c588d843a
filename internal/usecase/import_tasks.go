package usecase

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content []byte // YAML document: a list of {title: ...} entries
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Created tasks, in file order
}

// taskEntry is one YAML list item.
type taskEntry struct {
	Title string `yaml:"title"`
}

// ImportTasks is the use case for batch task creation from a YAML file.
// All entries are added inside a single unit of work, so a bad entry
// anywhere in the file means nothing is persisted.
type ImportTasks struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(projects domain.ProjectRepository, logger domain.Logger) *ImportTasks {
	return &ImportTasks{projects: projects, logger: logger}
}

// Execute parses the YAML content and creates one task per entry.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var entries []taskEntry
	if err := yaml.Unmarshal(in.Content, &entries); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("import file contains no tasks")
	}

	var tasks []*domain.Task
	err := uc.projects.WithProject(false, func(p *domain.Project) error {
		for i, entry := range entries {
			task, addErr := p.AddTask(entry.Title)
			if addErr != nil {
				return fmt.Errorf("entry %d: %w", i+1, addErr)
			}
			tasks = append(tasks, task)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d tasks", len(tasks)))
	}
	return &ImportTasksOutput{Tasks: tasks}, nil
}
