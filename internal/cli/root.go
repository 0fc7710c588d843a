// Package cli provides the command-line interface for taskdeck.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/sh0mura/taskdeck/internal/app"
)

// NewRootCommand creates the root command for taskdeck.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdeck",
		Short: "File-backed project and task tracker",
		Long: `taskdeck tracks the tasks of a single project in one JSON document
next to your code. Task branches are named <abbv>-<id>/<title-slug> so a
branch always identifies its task, and 'task complete' accepts a branch
name in place of an id.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(newProjectCommand(c))
	root.AddCommand(newTaskCommand(c))

	return root
}
