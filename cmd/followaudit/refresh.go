package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"followaudit/pkg/ui"
)

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Replace the cached snapshot with the live follow list",
	Long: `Fetch the live follow list and overwrite the cached snapshot with it.

If the fetch fails the snapshot is overwritten with an empty list and the
failure is reported.`,
	Args: cobra.NoArgs,
	RunE: runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	a, cfg, err := prepareAudit(cmd)
	if err != nil {
		return err
	}

	if err := a.RefreshCache(); err != nil {
		return err
	}

	if a.LastFetchError() != nil {
		ui.PrintWarning("The live list could not be fetched; the snapshot is now empty")
	}
	ui.PrintInfo("Cached accounts", fmt.Sprintf("%d", a.Cache().Len()))
	ui.PrintInfo("Cache file", cfg.Storage.CacheFile)

	sendDesktopNotification(fmt.Sprintf("Snapshot refreshed: %d accounts", a.Cache().Len()))
	return nil
}
