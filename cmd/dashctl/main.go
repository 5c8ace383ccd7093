// dashctl inspects and seeds the event registration store from the command line.
//
// Usage:
//
//	dashctl stats
//	dashctl events
//	dashctl events --mapping
//	dashctl seed --dir scripts/data
package main

import (
	"fmt"
	"os"

	"event-dashboard-backend/cmd/dashctl/cli"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
