// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sh0mura/taskdeck/internal/domain"
	"github.com/sh0mura/taskdeck/internal/infra/config"
	"github.com/sh0mura/taskdeck/internal/infra/git"
	"github.com/sh0mura/taskdeck/internal/infra/jsonstore"
	"github.com/sh0mura/taskdeck/internal/infra/logging"
	"github.com/sh0mura/taskdeck/internal/migrate"
	"github.com/sh0mura/taskdeck/internal/usecase"
)

// Container binds ports to their implementations and provides factory
// methods for use cases.
type Container struct {
	Projects domain.ProjectRepository
	Git      domain.Git // nil when run outside a git repository
	Logger   domain.Logger
	Migrator *migrate.Migrator
	Config   *domain.Config
	Root     string // Repository root, or the working directory without git
}

// New creates a Container rooted at the given directory. Running outside a
// git repository is fine for everything except branch operations; only the
// Git port is left unset in that case.
func New(dir string) (*Container, error) {
	root := dir
	var gitPort domain.Git
	client, err := git.NewClient(dir)
	switch {
	case err == nil:
		gitPort = client
		root = client.RepoRoot()
	case errors.Is(err, domain.ErrNotGitRepository):
		// Tracker still works; task start will refuse.
	default:
		return nil, err
	}

	cfg, err := config.NewLoader(root).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	migrator := migrate.NewDefault()
	store := jsonstore.New(filepath.Join(root, cfg.Store.File), migrator)

	logPath := cfg.Log.File
	if logPath != "" && !filepath.IsAbs(logPath) {
		logPath = filepath.Join(root, logPath)
	}
	logger := logging.New(logPath, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Projects: store,
		Git:      gitPort,
		Logger:   logger,
		Migrator: migrator,
		Config:   cfg,
		Root:     root,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(projects domain.ProjectRepository, gitPort domain.Git, logger domain.Logger, migrator *migrate.Migrator) *Container {
	return &Container{
		Projects: projects,
		Git:      gitPort,
		Logger:   logger,
		Migrator: migrator,
		Config:   domain.NewDefaultConfig(),
	}
}

// UseCase factory methods

// InitProjectUseCase returns a new InitProject use case.
func (c *Container) InitProjectUseCase() *usecase.InitProject {
	return usecase.NewInitProject(c.Projects, c.Migrator.LatestVersion(), c.Logger)
}

// ProjectInfoUseCase returns a new ProjectInfo use case.
func (c *Container) ProjectInfoUseCase() *usecase.ProjectInfo {
	return usecase.NewProjectInfo(c.Projects)
}

// MigrateProjectUseCase returns a new MigrateProject use case.
func (c *Container) MigrateProjectUseCase() *usecase.MigrateProject {
	return usecase.NewMigrateProject(c.Projects, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Projects, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Projects, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Projects)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Projects)
}

// StartTaskUseCase returns a new StartTask use case.
func (c *Container) StartTaskUseCase() *usecase.StartTask {
	return usecase.NewStartTask(c.Projects, c.Git, c.Logger)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Projects, c.Logger)
}

// MarkIncompleteUseCase returns a new MarkIncomplete use case.
func (c *Container) MarkIncompleteUseCase() *usecase.MarkIncomplete {
	return usecase.NewMarkIncomplete(c.Projects, c.Logger)
}
