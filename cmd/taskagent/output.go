package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"daily-task-agent/internal/model"
	"daily-task-agent/internal/planning"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/internal/summary"
)

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w, sectionStyle.Render(title))
}

func printTasks(w io.Writer, tasks []model.Task, withScore bool) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(no tasks)"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "ID\tSTATUS\tPRIORITY\tDURATION\tDUE\tTITLE\tTAGS"
	if withScore {
		header = "SCORE\t" + header
	}
	fmt.Fprintln(tw, header)

	for _, t := range tasks {
		row := fmt.Sprintf("%s\t%s\t%s\t%dm\t%s\t%s\t%s",
			t.ID, t.Status, orDash(t.PriorityHint), t.EffectiveDuration(), orDash(t.DueDate), t.Title, strings.Join(t.Tags, ","))
		if withScore {
			row = fmt.Sprintf("%.4f\t%s", t.Score, row)
		}
		fmt.Fprintln(tw, row)
	}
	tw.Flush()
}

func printTask(w io.Writer, t model.Task) {
	fmt.Fprintf(w, "%s  %s\n", t.ID, t.Title)
	fmt.Fprintf(w, "  status:    %s\n", t.Status)
	fmt.Fprintf(w, "  priority:  %s\n", orDash(t.PriorityHint))
	fmt.Fprintf(w, "  duration:  %dm\n", t.EffectiveDuration())
	fmt.Fprintf(w, "  due:       %s\n", orDash(t.DueDate))
	fmt.Fprintf(w, "  tags:      %s\n", orDash(strings.Join(t.Tags, ",")))
	if t.Description != "" && t.Description != t.Title {
		fmt.Fprintf(w, "  notes:     %s\n", t.Description)
	}
}

func printSchedule(w io.Writer, s scheduler.Schedule) {
	printSection(w, "Schedule for "+s.Day.Format("Mon 2006-01-02"))
	if len(s.Scheduled) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(nothing scheduled)"))
	}
	for _, slot := range s.Scheduled {
		line := fmt.Sprintf("%s-%s  %s", clock(slot.Start), clock(slot.End), slot.Title)
		if slot.IsBreak {
			line = dimStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}

	printSection(w, "Unscheduled")
	if len(s.Unscheduled) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(none)"))
	}
	for _, t := range s.Unscheduled {
		fmt.Fprintf(w, "%s (%dm)\n", t.Title, t.EffectiveDuration())
	}
}

func printExport(w io.Writer, res planning.ExportResult) {
	if !res.Requested {
		return
	}
	if !res.Available {
		fmt.Fprintln(w, errorStyle.Render("Calendar export skipped: no calendar configured"))
		return
	}
	fmt.Fprintf(w, "Calendar export: %d created, %d already present, %d failed\n", res.Created, res.Existing, res.Failed)
}

func printSummary(w io.Writer, s summary.Summary) {
	printSection(w, "Summary")
	fmt.Fprintln(w, s.Text)
}

func clock(t time.Time) string {
	return t.Format("15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
