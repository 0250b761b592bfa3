package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-task-agent/internal/task"
)

func addCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Capture a task from free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			out := a.taskUC.Handle(ctx, task.HandleInput{Text: strings.Join(args, " ")})
			if !out.Success {
				return fmt.Errorf("intake failed: %w", out.Err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			printTask(cmd.OutOrStdout(), *out.Task)
			return nil
		},
	}
}

func listCmd(opts *rootOptions) *cobra.Command {
	var input task.ListInput

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			tasks, err := a.taskUC.List(ctx, input)
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), tasks, false)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Status, "status", "", "Filter by status (todo, done)")
	cmd.Flags().StringVar(&input.Tag, "tag", "", "Filter by tag")

	return cmd
}

func doneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			t, err := a.taskUC.Complete(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", t.Title)
			return nil
		},
	}
}

func updateCmd(opts *rootOptions) *cobra.Command {
	var (
		title, description, due, priority, status string
		duration                                  int
		tags                                      []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := task.UpdateInput{ID: args[0]}
			flags := cmd.Flags()
			if flags.Changed("title") {
				input.Title = &title
			}
			if flags.Changed("description") {
				input.Description = &description
			}
			if flags.Changed("due") {
				input.DueDate = &due
			}
			if flags.Changed("duration") {
				input.DurationMinutes = &duration
			}
			if flags.Changed("priority") {
				input.PriorityHint = &priority
			}
			if flags.Changed("status") {
				input.Status = &status
			}
			if flags.Changed("tags") {
				input.Tags = tags
				if input.Tags == nil {
					input.Tags = []string{}
				}
			}

			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			t, err := a.taskUC.Update(ctx, input)
			if err != nil {
				return err
			}
			printTask(cmd.OutOrStdout(), t)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (ISO-8601), empty to clear")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (high, medium, low), empty to clear")
	cmd.Flags().StringVar(&status, "status", "", "Status (todo, done)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replace tags (comma separated)")

	return cmd
}

func deleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			if err := a.taskUC.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted: %s\n", args[0])
			return nil
		},
	}
}
