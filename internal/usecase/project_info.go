package usecase

import (
	"context"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// ProjectInfoOutput contains the project summary.
type ProjectInfoOutput struct {
	Name      string
	Abbv      string
	Version   int
	TaskCount int
}

// ProjectInfo is the use case for showing project metadata.
type ProjectInfo struct {
	projects domain.ProjectRepository
}

// NewProjectInfo creates a new ProjectInfo use case.
func NewProjectInfo(projects domain.ProjectRepository) *ProjectInfo {
	return &ProjectInfo{projects: projects}
}

// Execute reads the project summary without writing anything back.
func (uc *ProjectInfo) Execute(_ context.Context) (*ProjectInfoOutput, error) {
	var out ProjectInfoOutput
	err := uc.projects.WithProject(true, func(p *domain.Project) error {
		out = ProjectInfoOutput{
			Name:      p.Name,
			Abbv:      p.Abbv,
			Version:   p.Version,
			TaskCount: len(p.Tasks),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
