package cli

import (
	"context"
	"fmt"

	"event-dashboard-backend/internal/repository"
	"event-dashboard-backend/internal/seed"

	"github.com/spf13/cobra"
)

// DefaultSeedDir is where the shipped fixtures live, relative to the repository root.
const DefaultSeedDir = "scripts/data"

func newSeedCommand(open StoreOpener) *cobra.Command {
	var dir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load event and team fixtures into the store",
		Long: `Load the events and teams described by the fixture files in --dir.
Records already present are skipped, so the command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				fixtures, err := seed.ReadDir(dir)
				if err != nil {
					return err
				}
				if err := seed.NewLoader(nil, nil).Validate(fixtures); err != nil {
					return fmt.Errorf("invalid fixtures: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d events and %d teams are valid\n", len(fixtures.Events), len(fixtures.Teams))
				return nil
			}

			return withStore(cmd, open, func(ctx context.Context, repos *repository.Repositories) error {
				result, err := seed.NewLoader(repos.Events, repos.Teams).LoadDir(ctx, dir)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), result)
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", DefaultSeedDir, "Directory holding events.yaml and teams.yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the fixtures without touching the store")
	return cmd
}
