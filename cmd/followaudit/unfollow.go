package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"followaudit/pkg/audit"
	"followaudit/pkg/logger"
	"followaudit/pkg/ui"
)

var (
	// Unfollow command flags
	assumeYes bool
	saveAfter bool
)

// unfollowCmd represents the unfollow command
var unfollowCmd = &cobra.Command{
	Use:   "unfollow",
	Short: "Check for drift and unfollow the drifted accounts",
	Long: `Compute the drift like 'check', then ask for confirmation and send one
unfollow request per drifted account.

Accounts are processed in sorted order. Each account is handled on its own:
a failure for one does not stop the others and nothing is rolled back. Successfully unfollowed accounts are
removed from the in-memory snapshot, but the snapshot file is only rewritten
with --save.

Nothing is unfollowed when the live follow list cannot be fetched.`,
	Example: `  # Review the drift and confirm interactively
  followaudit unfollow

  # Unattended run that also saves the updated snapshot
  followaudit unfollow --yes --save`,
	Args: cobra.NoArgs,
	RunE: runUnfollow,
}

func init() {
	rootCmd.AddCommand(unfollowCmd)

	unfollowCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	unfollowCmd.Flags().BoolVar(&saveAfter, "save", false, "rewrite the snapshot file after unfollowing")
}

func runUnfollow(cmd *cobra.Command, args []string) error {
	a, _, err := prepareAudit(cmd)
	if err != nil {
		return err
	}

	drift := a.ComputeDrift()
	if a.LastFetchError() != nil {
		ui.PrintWarning(audit.NoticeLiveUnavailable)
		return nil
	}
	if drift.IsEmpty() {
		return nil
	}

	if !assumeYes && !confirm(os.Stdin, os.Stdout, fmt.Sprintf("Unfollow these %d accounts?", drift.Len())) {
		ui.PrintWarning("Unfollow cancelled")
		return nil
	}

	report := a.Unfollow(drift)
	logger.WithFields(map[string]interface{}{
		"succeeded": report.Succeeded.Len(),
		"failed":    len(report.Failed),
	}).Info("Unfollow completed")

	if saveAfter {
		if err := a.Persist(); err != nil {
			return err
		}
		ui.PrintSuccess("Snapshot saved")
	} else if !report.Succeeded.IsEmpty() {
		ui.PrintWarning("Snapshot file not rewritten; use --save or run 'followaudit refresh'")
	}

	sendDesktopNotification(fmt.Sprintf("%d unfollowed, %d failed", report.Succeeded.Len(), len(report.Failed)))
	return nil
}

// confirm asks a yes/no question; anything but y or yes means no
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		fmt.Fprintln(out)
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
