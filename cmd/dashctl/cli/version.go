package cli

import (
	"fmt"

	"event-dashboard-backend/internal/api/handlers"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the dashctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "dashctl version %s\n", handlers.Version)
	},
}
