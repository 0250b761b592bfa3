package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/task"
)

func prioritizeCmd(opts *rootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "prioritize",
		Short: "List tasks ordered by priority score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			out, err := a.planningUC.Prioritize(ctx, planning.PrioritizeInput{Status: status})
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), out.Tasks, true)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Tasks to rank: todo (default), done or all")

	return cmd
}

func scheduleCmd(opts *rootOptions) *cobra.Command {
	var input planning.ScheduleInput

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Plan pending tasks into the work day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			out, err := a.planningUC.Schedule(ctx, input)
			if err != nil {
				return err
			}
			printSchedule(cmd.OutOrStdout(), out.Schedule)
			printExport(cmd.OutOrStdout(), out.Export)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Day, "day", "", `Day to plan: today, tomorrow, "next monday", "in 3 days" or YYYY-MM-DD`)
	cmd.Flags().BoolVar(&input.Export, "export", false, "Create Google Calendar events for the scheduled tasks")

	return cmd
}

func summaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the end-of-day summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			s, err := a.planningUC.Summary(ctx)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

var demoInputs = []string{
	"Finish ML assignment tomorrow 3 hours",
	"Buy groceries today 30min",
}

func demoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample flow: intake, prioritize, schedule today, summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()
			a, err := newApp(ctx, opts)
			if err != nil {
				return err
			}

			printSection(w, "Adding demo tasks")
			for _, text := range demoInputs {
				out := a.taskUC.Handle(ctx, task.HandleInput{Text: text})
				if out.Success {
					fmt.Fprintln(w, out.Message)
				} else {
					fmt.Fprintf(w, "Skipped %q: %s\n", text, out.Error)
				}
			}

			tasks, err := a.taskUC.List(ctx, task.ListInput{})
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Loaded %d task(s) from the store\n", len(tasks))

			prioritized, err := a.planningUC.Prioritize(ctx, planning.PrioritizeInput{})
			if err != nil {
				return err
			}
			printSection(w, "Prioritized")
			printTasks(w, prioritized.Tasks, true)

			sched, err := a.planningUC.Schedule(ctx, planning.ScheduleInput{Day: "today"})
			if err != nil {
				return err
			}
			printSchedule(w, sched.Schedule)

			s, err := a.planningUC.Summary(ctx)
			if err != nil {
				return err
			}
			printSummary(w, s)
			return nil
		},
	}
}
