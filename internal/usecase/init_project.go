// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// InitProjectInput contains the parameters for initializing a project.
type InitProjectInput struct {
	Name string // Project name (required)
	Abbv string // Branch-name token (optional, derived from the name if empty)
}

// InitProjectOutput contains the result of initializing a project.
type InitProjectOutput struct {
	Project *domain.Project
}

// InitProject is the use case for creating the project document.
type InitProject struct {
	projects      domain.ProjectRepository
	logger        domain.Logger
	latestVersion int
}

// NewInitProject creates a new InitProject use case. latestVersion is the
// schema version stamped on the fresh document.
func NewInitProject(projects domain.ProjectRepository, latestVersion int, logger domain.Logger) *InitProject {
	return &InitProject{
		projects:      projects,
		latestVersion: latestVersion,
		logger:        logger,
	}
}

// Execute creates the project document.
func (uc *InitProject) Execute(_ context.Context, in InitProjectInput) (*InitProjectOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	abbv := in.Abbv
	if abbv == "" {
		abbv = domain.DefaultAbbv(in.Name)
	}

	project := domain.NewProject(in.Name, abbv, uc.latestVersion)
	if err := uc.projects.Init(project); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("project", fmt.Sprintf("initialized %q (%s)", in.Name, abbv))
	}
	return &InitProjectOutput{Project: project}, nil
}
