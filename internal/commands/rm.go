package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mytodo/internal/session"
)

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid todo id %q", args[0])
		}
		return withSession(func(ctx context.Context, s *session.Session) error {
			res := s.Delete(ctx, id)
			if !res.Confirmed() {
				return fmt.Errorf("delete failed: %w", res.Err)
			}
			fmt.Printf("Deleted #%d\n", id)
			return nil
		})
	},
}
