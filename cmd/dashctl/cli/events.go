package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"event-dashboard-backend/internal/repository"

	"github.com/spf13/cobra"
)

func newEventsCommand(open StoreOpener) *cobra.Command {
	var mapping bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List events ordered by title",
		Long: `List every event with its identifier, ordered by title.
With --mapping a JSON object from title to identifier is printed instead,
which is the shape seed fixtures refer to events by.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(ctx context.Context, repos *repository.Repositories) error {
				events, err := repos.Events.ListByTitle(ctx)
				if err != nil {
					return fmt.Errorf("failed to list events: %w", err)
				}

				out := cmd.OutOrStdout()
				if mapping {
					ids := make(map[string]string, len(events))
					for _, e := range events {
						ids[e.Title] = e.ID
					}
					return printJSON(out, ids)
				}

				if len(events) == 0 {
					fmt.Fprintln(out, "No events found.")
					return nil
				}

				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tTITLE")
				for _, e := range events {
					fmt.Fprintf(w, "%s\t%s\n", e.ID, e.Title)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&mapping, "mapping", false, "Print a JSON object mapping titles to ids")
	return cmd
}
