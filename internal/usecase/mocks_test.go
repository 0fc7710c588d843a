package usecase

import (
	"errors"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// mockProjectRepository is an in-memory test double for
// domain.ProjectRepository with real unit-of-work semantics: fn runs on a
// copy, and the copy is committed only on success.
type mockProjectRepository struct {
	project *domain.Project
	loadErr error
	saveErr error
	saves   int
}

func newMockProjectRepository(p *domain.Project) *mockProjectRepository {
	return &mockProjectRepository{project: p}
}

func cloneProject(p *domain.Project) *domain.Project {
	c := *p
	c.Tasks = make(map[int]*domain.Task, len(p.Tasks))
	for id, t := range p.Tasks {
		task := *t
		c.Tasks[id] = &task
	}
	return &c
}

func (m *mockProjectRepository) Load() (*domain.Project, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.project == nil {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(m.project), nil
}

func (m *mockProjectRepository) Save(p *domain.Project) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.project = cloneProject(p)
	m.saves++
	return nil
}

func (m *mockProjectRepository) WithProject(readOnly bool, fn func(p *domain.Project) error) error {
	p, err := m.Load()
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	if readOnly {
		return nil
	}
	return m.Save(p)
}

func (m *mockProjectRepository) Init(p *domain.Project) error {
	if m.project != nil {
		return domain.ErrAlreadyInitialized
	}
	m.project = cloneProject(p)
	return nil
}

var _ domain.ProjectRepository = (*mockProjectRepository)(nil)

// mockGit is a test double for domain.Git.
type mockGit struct {
	branches    map[string]bool
	current     string
	createErr   error
	checkoutErr error
}

func newMockGit() *mockGit {
	return &mockGit{branches: map[string]bool{"main": true}, current: "main"}
}

func (m *mockGit) CurrentBranch() (string, error) {
	return m.current, nil
}

func (m *mockGit) BranchExists(branch string) (bool, error) {
	return m.branches[branch], nil
}

func (m *mockGit) CreateBranch(branch string) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.branches[branch] {
		return errors.New("branch already exists")
	}
	m.branches[branch] = true
	m.current = branch
	return nil
}

func (m *mockGit) CheckoutBranch(branch string) error {
	if m.checkoutErr != nil {
		return m.checkoutErr
	}
	if !m.branches[branch] {
		return errors.New("branch does not exist")
	}
	m.current = branch
	return nil
}

var _ domain.Git = (*mockGit)(nil)

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Debug(string, string) {}
func (nopLogger) Info(string, string)  {}
func (nopLogger) Warn(string, string)  {}
func (nopLogger) Error(string, string) {}
