package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"followaudit/pkg/logger"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "List cached accounts missing from the live follow list",
	Long: `Fetch the live follow list and compare it with the cached snapshot.

Accounts in the snapshot that the live list no longer returns are printed.
Nothing is unfollowed and the snapshot is not modified.`,
	Example: `  # Check using the token from the environment
  FOLLOWAUDIT_ACCESS_TOKEN=... followaudit check

  # Check against a specific snapshot file
  followaudit check --cache-file ./following_list.json`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, _, err := prepareAudit(cmd)
	if err != nil {
		return err
	}

	drift := a.ComputeDrift()
	logger.WithField("drifted", drift.Len()).Info("Check completed")

	if a.LastFetchError() == nil {
		sendDesktopNotification(fmt.Sprintf("%d drifted accounts", drift.Len()))
	}
	return nil
}
