package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mytodo/internal/session"
	"mytodo/internal/views"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all todos",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		search, _ := cmd.Flags().GetString("search")
		return withSession(func(ctx context.Context, s *session.Session) error {
			v := s.List(views.Options{Status: status, Search: search})
			fmt.Print(renderView("All Todos", v))
			return nil
		})
	},
}

func init() {
	lsCmd.Flags().StringP("status", "s", views.StatusActive, "status filter (active/completed/all)")
	lsCmd.Flags().String("search", "", "search in title and description")
}
