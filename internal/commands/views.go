package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mytodo/internal/session"
	"mytodo/internal/views"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Show todos that are not filed into a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		search, _ := cmd.Flags().GetString("search")
		return withSession(func(ctx context.Context, s *session.Session) error {
			fmt.Print(renderView("Inbox", s.Inbox(status, search)))
			return nil
		})
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show todos due today",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		search, _ := cmd.Flags().GetString("search")
		return withSession(func(ctx context.Context, s *session.Session) error {
			fmt.Print(renderView("Today", s.Today(status, search)))
			return nil
		})
	},
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Show the next seven days grouped by day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, s *session.Session) error {
			fmt.Print(renderBuckets(s.Upcoming()))
			return nil
		})
	},
}

var logbookCmd = &cobra.Command{
	Use:   "logbook",
	Short: "Show completed todos, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, s *session.Session) error {
			done := s.Logbook()
			var b strings.Builder
			b.WriteString(titleStyle.Render("Logbook"))
			b.WriteString("\n")
			if len(done) == 0 {
				b.WriteString(mutedStyle.Render("  nothing completed yet\n"))
			}
			for _, t := range done {
				line := renderTodoLine(t)
				logged := t.LoggedAt()
				if !logged.IsZero() {
					line += mutedStyle.Render("  " + logged.Format("Jan 2 15:04"))
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
			fmt.Print(b.String())
			return nil
		})
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [id]",
	Short: "Show one project's todos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}
		status, _ := cmd.Flags().GetString("status")
		search, _ := cmd.Flags().GetString("search")
		return withSession(func(ctx context.Context, s *session.Session) error {
			project, err := s.Project(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(renderView(project.DisplayName(), s.ProjectView(id, status, search)))
			return nil
		})
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, s *session.Session) error {
			projects := s.Projects()
			var b strings.Builder
			b.WriteString(titleStyle.Render("Projects"))
			b.WriteString("\n")
			if len(projects) == 0 {
				b.WriteString(mutedStyle.Render("  no projects\n"))
			}
			for _, p := range projects {
				v := s.ProjectView(p.ID, views.StatusAll, "")
				b.WriteString(fmt.Sprintf("%4d %s %s\n", p.ID,
					headerStyle.Render(p.DisplayName()),
					mutedStyle.Render(fmt.Sprintf("%d/%d done", v.CompletedCount, v.TotalCount))))
			}
			fmt.Print(b.String())
			return nil
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{inboxCmd, todayCmd, projectCmd} {
		cmd.Flags().StringP("status", "s", views.StatusActive, "status filter (active/completed/all)")
		cmd.Flags().String("search", "", "search in title and description")
	}
}
