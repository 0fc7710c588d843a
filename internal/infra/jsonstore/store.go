// Package jsonstore persists the project document as a single JSON file.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sh0mura/taskdeck/internal/domain"
	"github.com/sh0mura/taskdeck/internal/migrate"
)

// Store implements domain.ProjectRepository on a JSON file.
//
// Every load reads the whole document and every save overwrites it; there is
// no partial update. The overwrite goes through a temp file and rename so a
// crash mid-write cannot truncate the document, but there is no locking:
// concurrent units of work race and the last writer wins.
type Store struct {
	path     string
	migrator *migrate.Migrator
}

// New creates a Store for the given file path.
func New(path string, migrator *migrate.Migrator) *Store {
	return &Store{path: path, migrator: migrator}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Init writes a fresh project document. Fails if one already exists.
func (s *Store) Init(p *domain.Project) error {
	if _, err := os.Stat(s.path); err == nil {
		return domain.ErrAlreadyInitialized
	}
	return s.Save(p)
}

// Load reads the document, migrates the raw content to the current schema
// and parses it into the typed model. The migrated content is not persisted
// here; it reaches disk with the next save.
func (s *Store) Load() (*domain.Project, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("read project document: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	if err := s.migrator.Apply(raw); err != nil {
		return nil, err
	}

	return parseProject(raw)
}

// Save serializes the full project state and overwrites the document.
func (s *Store) Save(p *domain.Project) error {
	content, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// WithProject runs fn against the loaded project as one unit of work.
// A nil return from fn commits the mutated project back to disk unless
// readOnly is set; any error discards the in-memory changes.
func (s *Store) WithProject(readOnly bool, fn func(p *domain.Project) error) error {
	p, err := s.Load()
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	if readOnly {
		return nil
	}
	return s.Save(p)
}

// parseProject converts the migrated raw document into the typed model.
// Migration has already normalized the shape, so anything that still does
// not fit is a parse error, not a migration problem.
func parseProject(raw map[string]any) (*domain.Project, error) {
	content, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	var p domain.Project
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	if p.NextID < 0 {
		return nil, fmt.Errorf("%w: negative next_id %d", domain.ErrParse, p.NextID)
	}
	if p.Tasks == nil {
		p.Tasks = make(map[int]*domain.Task)
	}
	for id, task := range p.Tasks {
		if task == nil {
			return nil, fmt.Errorf("%w: task %d is null", domain.ErrParse, id)
		}
		if task.ID != id {
			return nil, fmt.Errorf("%w: task key %d does not match id %d", domain.ErrParse, id, task.ID)
		}
		if !task.Status.IsValid() {
			return nil, fmt.Errorf("%w: task %d has unknown status %q", domain.ErrParse, id, task.Status)
		}
	}
	return &p, nil
}

// Ensure Store implements ProjectRepository.
var _ domain.ProjectRepository = (*Store)(nil)
