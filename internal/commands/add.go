package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mytodo/internal/model"
	"mytodo/internal/session"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new todo",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, s *session.Session) error {
			todo := model.Todo{
				Title:  strings.Join(args, " "),
				Status: model.StatusPending,
			}
			if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
				if !model.ValidPriority(priority) {
					return fmt.Errorf("invalid priority %q", priority)
				}
				todo.Priority = priority
			}
			if desc, _ := cmd.Flags().GetString("description"); desc != "" {
				todo.Description = desc
			}
			if projectID, _ := cmd.Flags().GetInt("project"); projectID > 0 {
				todo.ProjectID = &projectID
			}
			if due, _ := cmd.Flags().GetString("due"); due != "" {
				deadline, err := parseDue(due)
				if err != nil {
					return err
				}
				todo.DeadlineAt = &deadline
			}

			res := s.Add(ctx, todo)
			if !res.Confirmed() {
				return fmt.Errorf("add failed: %w", res.Err)
			}
			fmt.Printf("Added #%d: %s\n", res.Todo.ID, res.Todo.DisplayTitle())
			return nil
		})
	},
}

// parseDue accepts 2006-01-02 dates, "today", "tomorrow" and "Nd" day
// offsets.
func parseDue(s string) (time.Time, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch s {
	case "today":
		return midnight, nil
	case "tomorrow":
		return midnight.AddDate(0, 0, 1), nil
	}
	if strings.HasSuffix(s, "d") {
		var days int
		if _, err := fmt.Sscanf(s, "%dd", &days); err == nil {
			return midnight.AddDate(0, 0, days), nil
		}
	}
	t, err := time.ParseInLocation("2006-01-02", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse due date %q", s)
	}
	return t, nil
}

func init() {
	addCmd.Flags().StringP("priority", "p", "", "priority (low/medium/high/urgent)")
	addCmd.Flags().StringP("description", "d", "", "description")
	addCmd.Flags().Int("project", 0, "project id")
	addCmd.Flags().String("due", "", "deadline (2006-01-02, today, tomorrow, Nd)")
}
