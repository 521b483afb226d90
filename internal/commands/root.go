package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"mytodo/internal/client"
	"mytodo/internal/config"
	"mytodo/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var apiURL string

var rootCmd = &cobra.Command{
	Use:   "mytodo",
	Short: "A CLI todo manager",
	Long: `mytodo is a command-line client for the MyTodo server.
Organize todos into projects and browse them through the Inbox, Today,
Upcoming and Logbook views.`,
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// withSession opens a session against the server, refreshes it, runs fn and
// closes it. Every command is a one-shot: connect, act, render, exit.
func withSession(fn func(ctx context.Context, s *session.Session) error) error {
	cfg := config.Load()
	base := apiURL
	if base == "" {
		base = cfg.APIBaseURL
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s := session.New(client.New(base), session.WithCompletionDelay(0))
	defer s.Close()

	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("cannot reach server at %s: %w", base, err)
	}
	return fn(ctx, s)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "server base URL (default from API_BASE_URL)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(inboxCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(logbookCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mytodo %s (%s, built %s)\n", version, commit, date)
	},
}
