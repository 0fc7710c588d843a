package migrate

import (
	"fmt"

	"github.com/sh0mura/taskdeck/internal/domain"
)

// Steps is the production migration history. Never reorder or remove
// entries; persisted documents identify applied steps by index.
var Steps = []Step{
	addTaskFields,   // v0: documents from before task storage existed
	addProjectAbbv,  // v1: branch naming introduced the project abbreviation
	addTaskStatuses, // v2: tasks gained a lifecycle status
}

// addTaskFields injects the task map and id counter into documents that
// predate task storage.
func addTaskFields(raw map[string]any) error {
	if _, ok := raw["tasks"]; !ok {
		raw["tasks"] = map[string]any{}
	}
	if _, ok := raw["next_id"]; !ok {
		raw["next_id"] = 0
	}
	return nil
}

// addProjectAbbv derives a project abbreviation from the name for documents
// created before branch integration.
func addProjectAbbv(raw map[string]any) error {
	if _, ok := raw["project_abbv"]; ok {
		return nil
	}
	name, _ := raw["name"].(string)
	raw["project_abbv"] = domain.DefaultAbbv(name)
	return nil
}

// addTaskStatuses marks every status-less task as incomplete.
func addTaskStatuses(raw map[string]any) error {
	tasks, ok := raw["tasks"].(map[string]any)
	if !ok {
		return fmt.Errorf("tasks field has type %T, want object", raw["tasks"])
	}
	for id, v := range tasks {
		task, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("task %s has type %T, want object", id, v)
		}
		if _, ok := task["status"]; !ok {
			task["status"] = string(domain.StatusIncomplete)
		}
	}
	return nil
}
