package domain

import (
	"errors"
	"testing"
)

func TestProject_AddTask(t *testing.T) {
	p := NewProject("Demo", "DMO", 2)

	first, err := p.AddTask("Write spec")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if first.ID != 1 {
		t.Errorf("first task id = %d, want 1", first.ID)
	}
	if first.Title != "Write spec" {
		t.Errorf("title = %q, want %q", first.Title, "Write spec")
	}
	if first.Status != StatusIncomplete {
		t.Errorf("status = %q, want incomplete", first.Status)
	}
	if p.NextID != 1 {
		t.Errorf("next_id = %d, want 1", p.NextID)
	}

	// Ids are strictly increasing by one and next_id tracks the last one.
	for i := 2; i <= 5; i++ {
		task, err := p.AddTask("Another")
		if err != nil {
			t.Fatalf("AddTask #%d: %v", i, err)
		}
		if task.ID != i {
			t.Errorf("task id = %d, want %d", task.ID, i)
		}
		if p.NextID != i {
			t.Errorf("next_id = %d, want %d", p.NextID, i)
		}
	}
	if len(p.Tasks) != 5 {
		t.Errorf("task count = %d, want 5", len(p.Tasks))
	}
}

func TestProject_AddTask_EmptyTitle(t *testing.T) {
	p := NewProject("Demo", "DMO", 2)
	if _, err := p.AddTask(""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("AddTask(\"\") error = %v, want ErrEmptyTitle", err)
	}
	if p.NextID != 0 {
		t.Errorf("next_id advanced on rejected title: %d", p.NextID)
	}
}

func TestProject_AddTask_DuplicateID(t *testing.T) {
	// A task already sitting on next_id+1 means the document is corrupted.
	p := NewProject("Demo", "DMO", 2)
	p.Tasks[1] = &Task{ID: 1, Title: "Ghost", Status: StatusIncomplete}

	_, err := p.AddTask("New task")
	if !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("AddTask error = %v, want ErrInvariantViolation", err)
	}
	// The ghost task must not have been overwritten.
	if p.Tasks[1].Title != "Ghost" {
		t.Errorf("existing task was overwritten")
	}
}

func TestProject_GetTask(t *testing.T) {
	p := NewProject("Demo", "DMO", 2)
	created, err := p.AddTask("Write spec")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	got, err := p.GetTask(created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got != created {
		t.Errorf("GetTask returned a different task")
	}

	if _, err := p.GetTask(99); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("GetTask(99) error = %v, want ErrTaskNotFound", err)
	}
}

func TestProject_SetStatus(t *testing.T) {
	p := NewProject("Demo", "DMO", 2)
	task, err := p.AddTask("Write spec")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	updated, err := p.SetStatus(task.ID, StatusStarted)
	if err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if updated.Status != StatusStarted {
		t.Errorf("status = %q, want started", updated.Status)
	}

	// Idempotent: applying the same status again changes nothing.
	again, err := p.SetStatus(task.ID, StatusStarted)
	if err != nil {
		t.Fatalf("SetStatus again: %v", err)
	}
	if *again != *updated {
		t.Errorf("second SetStatus changed the task: %+v vs %+v", again, updated)
	}

	// Transitions are unrestricted, including complete -> started.
	if _, err := p.SetStatus(task.ID, StatusComplete); err != nil {
		t.Fatalf("SetStatus(complete): %v", err)
	}
	if _, err := p.SetStatus(task.ID, StatusStarted); err != nil {
		t.Fatalf("SetStatus(complete -> started): %v", err)
	}

	if _, err := p.SetStatus(42, StatusComplete); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("SetStatus(42) error = %v, want ErrTaskNotFound", err)
	}
}

func TestProject_OrderedTasks(t *testing.T) {
	p := NewProject("Demo", "DMO", 2)
	for _, title := range []string{"a", "b", "c", "d"} {
		if _, err := p.AddTask(title); err != nil {
			t.Fatalf("AddTask: %v", err)
		}
	}

	tasks := p.OrderedTasks()
	if len(tasks) != 4 {
		t.Fatalf("len = %d, want 4", len(tasks))
	}
	for i, task := range tasks {
		if task.ID != i+1 {
			t.Errorf("tasks[%d].ID = %d, want %d", i, task.ID, i+1)
		}
	}
}

func TestDefaultAbbv(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single short word", "app", "APP"},
		{"single long word", "backend", "BAC"},
		{"two words", "My Project", "MP"},
		{"three words", "big data pipeline", "BDP"},
		{"punctuation", "my-cool.project", "MCP"},
		{"empty", "", "PRJ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultAbbv(tt.in); got != tt.want {
				t.Errorf("DefaultAbbv(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
