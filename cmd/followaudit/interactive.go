package main

import (
	"github.com/spf13/cobra"

	"followaudit/pkg/audit"
	"followaudit/pkg/ui/tui"
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Open the interactive form (default)",
	Long: `Open a terminal form with a hidden access token field and the three
actions: check drifted accounts, check and unfollow drifted accounts, and
refresh the cache from the live list.

Unfollowing always asks for a second confirmation.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}

	factory := func(token string, notifier audit.Notifier) (*audit.FollowAudit, error) {
		return newAudit(cfg, token, notifier)
	}

	// A token from the flag or environment pre-fills the hidden field
	return tui.NewTUI(factory, cfg.Threads.AccessToken).Start()
}
