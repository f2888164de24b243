package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"followaudit/pkg/logger"
	"followaudit/pkg/storage"
	"followaudit/pkg/ui"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the cached follow list",
	Long: `Print the account identifiers held in the cached snapshot.

This command works offline and needs no access token.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}

	store := storage.NewFollowStore(cfg.Storage.CacheFile, logger.GetLogger())
	ui.PrintInfo("Cache file", store.Path())

	if !store.Exists() {
		ui.PrintWarning("No cached follow list yet; run 'followaudit refresh' first")
		return nil
	}

	cached, err := store.Load()
	if err != nil {
		return err
	}

	ui.PrintInfo("Cached accounts", fmt.Sprintf("%d", cached.Len()))
	ui.PrintList(cached.Sorted())
	return nil
}
