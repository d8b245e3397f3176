package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"coffeebar.GO/cron"
	_ "coffeebar.GO/cron/jobs"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if jobName != "" {
			name := strings.ToLower(jobName)
			fmt.Fprintf(out, "Running cron job: %s\n", name)
			if err := cron.RunJob(cmd.Context(), d, name, args...); err != nil {
				return err
			}
			fmt.Fprintln(out, successStyle.Render("done"))
			return nil
		}

		fmt.Fprintln(out, "Starting cron scheduler...")
		c, err := cron.StartCron(d)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, "Cron scheduler started. Press Ctrl+C to exit.")
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		<-ctx.Done()
		<-c.Stop().Done()
		return nil
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	rootCmd.AddCommand(cronStartCmd)
}
