package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mytodo/internal/session"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Toggle a todo between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid todo id %q", args[0])
		}
		return withSession(func(ctx context.Context, s *session.Session) error {
			res := s.Toggle(ctx, id)
			if !res.Confirmed() {
				return fmt.Errorf("toggle failed: %w", res.Err)
			}
			if res.Todo.Completed() {
				fmt.Printf("Completed #%d: %s\n", res.Todo.ID, res.Todo.DisplayTitle())
			} else {
				fmt.Printf("Reopened #%d: %s\n", res.Todo.ID, res.Todo.DisplayTitle())
			}
			return nil
		})
	},
}
