package usecase

import (
	"context"
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// StartTaskInput contains the parameters for starting a task.
type StartTaskInput struct {
	ID int // Task to start
}

// StartTaskOutput contains the result of starting a task.
type StartTaskOutput struct {
	Task    *domain.Task
	Branch  string // Branch that was checked out
	Created bool   // False if the branch already existed and was reused
}

// StartTask marks a task as started and checks out its branch.
//
// The status change and the branch operation happen inside the same unit of
// work: if git fails, the status write is discarded and the document is left
// untouched.
type StartTask struct {
	projects domain.ProjectRepository
	git      domain.Git
	logger   domain.Logger
}

// NewStartTask creates a new StartTask use case.
func NewStartTask(projects domain.ProjectRepository, git domain.Git, logger domain.Logger) *StartTask {
	return &StartTask{projects: projects, git: git, logger: logger}
}

// Execute starts the task with the given id.
func (uc *StartTask) Execute(_ context.Context, in StartTaskInput) (*StartTaskOutput, error) {
	if uc.git == nil {
		return nil, domain.ErrNotGitRepository
	}

	var out StartTaskOutput
	err := uc.projects.WithProject(false, func(p *domain.Project) error {
		task, setErr := p.SetStatus(in.ID, domain.StatusStarted)
		if setErr != nil {
			return setErr
		}

		branch := domain.BranchName(p.Abbv, task.ID, task.Title)
		exists, gitErr := uc.git.BranchExists(branch)
		if gitErr != nil {
			return gitErr
		}
		if exists {
			if gitErr := uc.git.CheckoutBranch(branch); gitErr != nil {
				return gitErr
			}
		} else {
			if gitErr := uc.git.CreateBranch(branch); gitErr != nil {
				return gitErr
			}
		}

		out = StartTaskOutput{Task: task, Branch: branch, Created: !exists}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("started #%d on branch %s", out.Task.ID, out.Branch))
	}
	return &out, nil
}
