package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"event-dashboard-backend/internal/config"
	"event-dashboard-backend/internal/logger"
	"event-dashboard-backend/internal/repository"

	"github.com/spf13/cobra"
)

// StoreOpener connects the repositories a command works against.
type StoreOpener func(ctx context.Context) (*repository.Repositories, error)

// OpenConfiguredStore loads configuration from the environment and connects the configured store.
// Logs go to stderr so command output stays machine readable.
func OpenConfiguredStore(ctx context.Context) (*repository.Repositories, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel, os.Stderr)
	return repository.Connect(ctx, cfg)
}

// NewRootCommand builds the dashctl command tree on top of open.
func NewRootCommand(open StoreOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dashctl",
		Short: "Event registration store tooling",
		Long: `dashctl reads dashboard statistics straight from the store,
lists events with their identifiers and loads seed fixtures.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newStatsCommand(open))
	rootCmd.AddCommand(newEventsCommand(open))
	rootCmd.AddCommand(newSeedCommand(open))
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func Execute() error {
	return NewRootCommand(OpenConfiguredStore).Execute()
}

// withStore opens the store for the duration of fn and always closes it.
func withStore(cmd *cobra.Command, open StoreOpener, fn func(ctx context.Context, repos *repository.Repositories) error) (err error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repos, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := repos.Close(context.Background()); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(ctx, repos)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
