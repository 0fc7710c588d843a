// Package domain contains core business entities and interfaces.
package domain

// Task represents a single unit of work inside a project.
// A task exists only as an entry of its project's task map; the id is
// assigned once at creation and never changes.
type Task struct {
	ID     int    `json:"id"`     // Positive, unique within the project
	Title  string `json:"title"`  // Required, non-empty
	Status Status `json:"status"` // Defaults to incomplete
}
