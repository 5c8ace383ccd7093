package cli

import (
	"context"

	"event-dashboard-backend/internal/repository"
	"event-dashboard-backend/internal/service"

	"github.com/spf13/cobra"
)

func newStatsCommand(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard statistics as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(ctx context.Context, repos *repository.Repositories) error {
				stats, err := service.NewDashboardService(repos.Events, repos.Teams).GetStats(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), stats)
			})
		},
	}
}
