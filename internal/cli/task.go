package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sh0mura/taskdeck/internal/app"
	"github.com/sh0mura/taskdeck/internal/usecase"
)

// newTaskCommand creates the task command group.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(newTaskAddCommand(c))
	cmd.AddCommand(newTaskImportCommand(c))
	cmd.AddCommand(newTaskListCommand(c))
	cmd.AddCommand(newTaskShowCommand(c))
	cmd.AddCommand(newTaskStartCommand(c))
	cmd.AddCommand(newTaskCompleteCommand(c))
	cmd.AddCommand(newTaskIncompleteCommand(c))

	return cmd
}

// parseTaskID converts a positional argument into a task id.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}

func newTaskAddCommand(c *app.Container) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if title == "" {
				prompted, err := promptTitle()
				if err != nil {
					return err
				}
				title = prompted
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{Title: title})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title (prompted for when omitted)")
	return cmd
}

func newTaskImportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Create tasks from a YAML file",
		Long: `Create tasks from a YAML file holding a list of titles:

  - title: First task
  - title: Second task

The whole file is applied as a single unit of work; one bad entry means
no task is created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{Content: content})
			if err != nil {
				return err
			}
			for _, task := range out.Tasks {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", task.ID, task.Title)
			}
			return nil
		},
	}
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			r := newRenderer(c.Config.UI.Color)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), r.projectHeader(out.ProjectName))
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet. Create one with 'taskdeck task add'.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, task := range out.Tasks {
				_, _ = fmt.Fprintln(w, r.taskLine(task))
			}
			return w.Flush()
		},
	}
}

func newTaskShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{ID: id})
			if err != nil {
				return err
			}

			r := newRenderer(c.Config.UI.Color)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d\n", out.Task.ID)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Title:  %s\n", out.Task.Title)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Status: %s\n", r.status(out.Task.Status))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Branch: %s\n", out.Branch)
			return nil
		},
	}
}

func newTaskStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a task started and check out its branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.StartTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StartTaskInput{ID: id})
			if err != nil {
				return err
			}

			verb := "Switched to"
			if out.Created {
				verb = "Created"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Started task #%d. %s branch %s\n",
				out.Task.ID, verb, out.Branch)
			return nil
		},
	}
}

func newTaskCompleteCommand(c *app.Container) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Mark a task complete by id or branch name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.CompleteTaskInput{Branch: branch}
			if len(args) == 1 {
				id, err := parseTaskID(args[0])
				if err != nil {
					return err
				}
				in.ID = id
			}

			uc := c.CompleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Branch name to resolve the task from (instead of an id)")
	return cmd
}

func newTaskIncompleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "incomplete <id>",
		Short: "Put a task back to incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			uc := c.MarkIncompleteUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.MarkIncompleteInput{ID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Marked task #%d incomplete\n", out.Task.ID)
			return nil
		},
	}
}
