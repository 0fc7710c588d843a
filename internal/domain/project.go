package domain

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Project is the typed model of the persisted document. The whole project is
// read, mutated in memory and rewritten as a unit; there is no partial update
// of the backing file.
type Project struct {
	Name    string        `json:"name"`
	Abbv    string        `json:"project_abbv"` // Short token used in branch names
	NextID  int           `json:"next_id"`      // Monotonically non-decreasing
	Tasks   map[int]*Task `json:"tasks"`
	Version int           `json:"version"` // Highest migration index applied
}

// NewProject creates an empty project at the given schema version.
func NewProject(name, abbv string, version int) *Project {
	return &Project{
		Name:    name,
		Abbv:    abbv,
		Tasks:   make(map[int]*Task),
		Version: version,
	}
}

// AddTask creates a new incomplete task with the next free id.
//
// NextID is incremented before the task is constructed, so a corrupted
// tasks/next_id relationship is caught by the duplicate check below rather
// than silently overwriting an existing task. That condition surfaces as
// ErrInvariantViolation and must abort the surrounding unit of work.
func (p *Project) AddTask(title string) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}

	p.NextID++
	if _, exists := p.Tasks[p.NextID]; exists {
		return nil, fmt.Errorf("%w: id %d", ErrInvariantViolation, p.NextID)
	}

	task := &Task{
		ID:     p.NextID,
		Title:  title,
		Status: StatusIncomplete,
	}
	if p.Tasks == nil {
		p.Tasks = make(map[int]*Task)
	}
	p.Tasks[task.ID] = task
	return task, nil
}

// GetTask retrieves a task by id.
func (p *Project) GetTask(id int) (*Task, error) {
	task, ok := p.Tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: #%d", ErrTaskNotFound, id)
	}
	return task, nil
}

// SetStatus overwrites the status of a task. No transition is rejected;
// every status is reachable from every other via a direct command.
func (p *Project) SetStatus(id int, status Status) (*Task, error) {
	task, err := p.GetTask(id)
	if err != nil {
		return nil, err
	}
	task.Status = status
	return task, nil
}

// OrderedTasks returns the tasks sorted by ascending id. The map itself has
// no meaningful order; this is for display only.
func (p *Project) OrderedTasks() []*Task {
	tasks := make([]*Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, t)
	}
	slices.SortFunc(tasks, func(a, b *Task) int {
		return a.ID - b.ID
	})
	return tasks
}

// DefaultAbbv derives a branch-name token from a project name: the initials
// of a multi-word name, or the first three letters of a single-word name,
// uppercased either way.
func DefaultAbbv(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return "PRJ"
	}
	if len(fields) == 1 {
		word := fields[0]
		if len(word) > 3 {
			word = word[:3]
		}
		return strings.ToUpper(word)
	}
	var b strings.Builder
	for _, f := range fields {
		b.WriteString(strings.ToUpper(f[:1]))
	}
	return b.String()
}
