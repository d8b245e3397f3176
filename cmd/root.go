// Package cmd is the coffeebar command line: the server, the cron scheduler
// and terminal views of the coffee shop, the cart and the book search.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coffeebar.GO/app"
)

var (
	verbose bool

	// deps is built on first use so that commands which never touch the
	// network or storage start without them.
	deps    *app.Deps
	cleanup func()
)

var rootCmd = &cobra.Command{
	Use:           "coffeebar",
	Short:         "Coffee shop and book search",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadDeps bootstraps the services once per process.
func loadDeps(cmd *cobra.Command) (*app.Deps, error) {
	if deps != nil {
		return deps, nil
	}
	d, done, err := app.Bootstrap(cmd.Context(), verbose)
	if err != nil {
		return nil, err
	}
	deps, cleanup = d, done
	return deps, nil
}

// Execute adds registered commands and runs the root command.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		if cleanup != nil {
			cleanup()
		}
		os.Exit(1)
	}
}
