package usecase

import (
	"context"
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// MigrateProjectOutput contains the migration result.
type MigrateProjectOutput struct {
	Version int // Schema version after the rewrite
}

// MigrateProject is the use case behind `project migrate`: load the document
// (which runs any pending migrations on the raw content) and rewrite it, so
// the migrated schema reaches disk even without a task mutation.
type MigrateProject struct {
	projects domain.ProjectRepository
	logger   domain.Logger
}

// NewMigrateProject creates a new MigrateProject use case.
func NewMigrateProject(projects domain.ProjectRepository, logger domain.Logger) *MigrateProject {
	return &MigrateProject{projects: projects, logger: logger}
}

// Execute rewrites the document at the current schema version. Running it
// on an up-to-date document is a harmless no-op rewrite.
func (uc *MigrateProject) Execute(_ context.Context) (*MigrateProjectOutput, error) {
	var out MigrateProjectOutput
	err := uc.projects.WithProject(false, func(p *domain.Project) error {
		out.Version = p.Version
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("project", fmt.Sprintf("document rewritten at schema version %d", out.Version))
	}
	return &out, nil
}
