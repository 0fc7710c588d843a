package domain

// Status represents the lifecycle state of a task.
//
// Transitions are unrestricted: any status may be overwritten with any other.
// A guarded state machine (e.g. requiring an explicit reopen before going
// from complete back to started) is a possible refinement but is not what
// the commands implement today.
type Status string

const (
	StatusIncomplete Status = "incomplete" // Created, not yet started
	StatusStarted    Status = "started"    // Work in progress on a task branch
	StatusComplete   Status = "complete"   // Finished
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusIncomplete, StatusStarted, StatusComplete}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusStarted, StatusComplete:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusIncomplete:
		return "Incomplete"
	case StatusStarted:
		return "Started"
	case StatusComplete:
		return "Complete"
	default:
		return string(s)
	}
}

// Symbol returns the single-character marker used in task listings.
func (s Status) Symbol() string {
	switch s {
	case StatusStarted:
		return ">"
	case StatusComplete:
		return "x"
	default:
		return " "
	}
}
