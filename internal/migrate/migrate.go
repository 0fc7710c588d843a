// Package migrate evolves the raw project document across schema versions.
//
// Migrations run on the untyped document (a map decoded straight from JSON),
// never on the typed model: an old document may lack fields or carry shapes
// that the current model cannot represent, and it is exactly the migrations'
// job to fix that before parsing.
package migrate

import (
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// A Step transforms the raw document from one schema version to the next.
// Steps mutate the map in place and must be deterministic.
type Step func(raw map[string]any) error

// Migrator applies an ordered sequence of steps. Step index i is the schema
// version a document has after that step completes.
type Migrator struct {
	steps []Step
}

// New creates a Migrator with the given steps. Tests register their own
// steps; production code uses NewDefault.
func New(steps ...Step) *Migrator {
	return &Migrator{steps: steps}
}

// NewDefault creates a Migrator with the full production migration history.
func NewDefault() *Migrator {
	return New(Steps...)
}

// LatestVersion returns the schema version of a fully migrated document.
// This is also the version stamped on freshly initialized documents.
func (m *Migrator) LatestVersion() int {
	return len(m.steps) - 1
}

// Apply migrates the raw document in place. The stored version defaults to
// -1 when the field is absent (legacy document predating versioning). Each
// step with index greater than the stored version runs in order, and the
// version field is advanced after each completed step, so a failing step
// leaves the version at the last full success.
func (m *Migrator) Apply(raw map[string]any) error {
	stored, err := storedVersion(raw)
	if err != nil {
		return err
	}
	for i, step := range m.steps {
		if i <= stored {
			continue
		}
		if err := step(raw); err != nil {
			return fmt.Errorf("%w: step %d: %v", domain.ErrMigrationFailed, i, err)
		}
		raw["version"] = i
	}
	return nil
}

// storedVersion reads the version field, tolerating the numeric types the
// JSON decoder may produce.
func storedVersion(raw map[string]any) (int, error) {
	v, ok := raw["version"]
	if !ok {
		return -1, nil
	}
	switch n := v.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: version field has type %T", domain.ErrParse, v)
	}
}
