package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	logFile    string
	tokenFlag  string
	baseURL    string
	cacheFile  string
	timeout    time.Duration
	noLogo     bool
	notify     bool
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it opens the interactive form.
var rootCmd = &cobra.Command{
	Use:   "followaudit",
	Short: "Find accounts that dropped out of your Threads follow list",
	Long: `followaudit keeps a local snapshot of the accounts you follow on Threads
and compares it with the live follow list.

Accounts present in the snapshot but missing from the live list are "drift".
You can review the drift, unfollow those accounts, or refresh the snapshot.

The access token is read from --token, FOLLOWAUDIT_ACCESS_TOKEN (a .env file
works too) or a hidden prompt. It is never written to disk.`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printFailure(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .followaudit.yaml or ~/.config/followaudit/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "Threads access token (prefer FOLLOWAUDIT_ACCESS_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Threads API base URL")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache-file", "", "path of the cached follow list")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP timeout (0 keeps the client default)")
	rootCmd.PersistentFlags().BoolVar(&noLogo, "no-logo", false, "do not print the logo")
	rootCmd.PersistentFlags().BoolVar(&notify, "notify", false, "send a desktop notification when a run finishes")

	rootCmd.SetVersionTemplate(`followaudit {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
