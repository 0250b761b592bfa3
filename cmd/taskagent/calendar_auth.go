package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daily-task-agent/config"
	"daily-task-agent/pkg/gcalendar"
)

// calendarAuthCmd runs the one-time OAuth consent for desktop credentials and saves
// the token where the calendar client looks for it.
func calendarAuthCmd(opts *rootOptions) *cobra.Command {
	var credsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if credsPath == "" {
				credsPath = cfg.GoogleCalendar.CredentialsPath
			}
			if tokenPath == "" {
				tokenPath = cfg.GoogleCalendar.TokenPath
			}
			if credsPath == "" {
				return fmt.Errorf("no credentials file: pass --credentials or set google_calendar.credentials_path")
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}
			oauthCfg, err := gcalendar.NewOAuthConfig(data)
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth Desktop App credentials file?)", err, credsPath)
			}

			w := cmd.OutOrStdout()
			printSection(w, "Step 1: open this URL and sign in with your Google account")
			fmt.Fprintln(w, gcalendar.AuthCodeURL(oauthCfg))
			fmt.Fprintln(w)
			fmt.Fprint(w, "Step 2: paste the authorization code and press Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := gcalendar.ExchangeCode(cmd.Context(), oauthCfg, strings.TrimSpace(code))
			if err != nil {
				return err
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(w, "\nToken saved to %s\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "", "OAuth Desktop App credentials file, overrides google_calendar.credentials_path")
	cmd.Flags().StringVar(&tokenPath, "token", "", "Where to save the token, overrides google_calendar.token_path")

	return cmd
}
