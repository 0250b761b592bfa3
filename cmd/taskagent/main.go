package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "daily-task-agent/docs" // Swagger docs
)

var Version = "dev"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	storePath  string
}

// @title       Daily Task Agent API
// @description Capture free-text tasks, prioritize them and plan the working day.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "taskagent",
		Short:         "Daily task agent - capture, prioritize and schedule today's tasks",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: config/config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&opts.storePath, "store", "", "Task store file, overrides storage.path")

	rootCmd.AddCommand(demoCmd(opts))
	rootCmd.AddCommand(addCmd(opts))
	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(doneCmd(opts))
	rootCmd.AddCommand(updateCmd(opts))
	rootCmd.AddCommand(deleteCmd(opts))
	rootCmd.AddCommand(prioritizeCmd(opts))
	rootCmd.AddCommand(scheduleCmd(opts))
	rootCmd.AddCommand(summaryCmd(opts))
	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(calendarAuthCmd(opts))

	return rootCmd
}
