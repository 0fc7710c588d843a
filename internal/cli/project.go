package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sh0mura/taskdeck/internal/app"
	"github.com/sh0mura/taskdeck/internal/usecase"
)

// newProjectCommand creates the project command group.
func newProjectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage the project document",
	}

	cmd.AddCommand(newProjectInitCommand(c))
	cmd.AddCommand(newProjectInfoCommand(c))
	cmd.AddCommand(newProjectMigrateCommand(c))

	return cmd
}

func newProjectInitCommand(c *app.Container) *cobra.Command {
	var abbv string

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create the project document in the current repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.InitProjectUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitProjectInput{
				Name: args[0],
				Abbv: abbv,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized project %q (branch prefix %s)\n",
				out.Project.Name, out.Project.Abbv)
			return nil
		},
	}

	cmd.Flags().StringVar(&abbv, "abbv", "", "Branch-name token (default: derived from the name)")
	return cmd
}

func newProjectInfoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show project metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ProjectInfoUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}
			r := newRenderer(c.Config.UI.Color)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), r.projectHeader(out.Name))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Branch prefix:  %s\n", out.Abbv)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", out.Version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Tasks:          %d\n", out.TaskCount)
			return nil
		},
	}
}

func newProjectMigrateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite the project document at the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.MigrateProjectUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project document is at schema version %d\n", out.Version)
			return nil
		},
	}
}
