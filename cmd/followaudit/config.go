package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"followaudit/pkg/auth"
	"followaudit/pkg/config"
	"followaudit/pkg/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage followaudit configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (FOLLOWAUDIT_*) and .env files
  - Configuration file
  - Default values (lowest priority)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file is created in the current directory as '.followaudit.yaml' unless a
different path is given with --config. The access token is never part of it.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after merging all sources.

The access token is shown masked.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

const exampleConfig = `# followaudit configuration file
#
# Environment variables override these values:
#   FOLLOWAUDIT_ACCESS_TOKEN, FOLLOWAUDIT_BASE_URL, FOLLOWAUDIT_USER_AGENT,
#   FOLLOWAUDIT_TIMEOUT, FOLLOWAUDIT_CACHE_FILE, FOLLOWAUDIT_LOG_LEVEL,
#   FOLLOWAUDIT_LOG_FILE
#
# The access token cannot be set here. Use the environment or --token.

threads:
  # Threads API base URL
  base_url: "https://www.threads.net/api/v1"

  # User agent sent with every request
  user_agent: "followaudit/1.0"

  # HTTP timeout, e.g. "30s". 0 keeps the client default.
  timeout: 0s

# Cached follow list. Defaults to following_list.json in the platform data
# directory ($XDG_DATA_HOME/followaudit on Linux).
# storage:
#   cache_file: "/path/to/following_list.json"

logging:
  # Log level: debug, info, warn, error, disabled
  level: "warn"

  # Log file path (optional). Logs go to stderr when empty.
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := configFile
	if configPath == "" {
		configPath = ".followaudit.yaml"
	}

	if _, err := os.Stat(configPath); err == nil {
		ui.PrintError("Configuration file already exists", configPath)
		fmt.Println("\nTo overwrite, first remove the existing file:")
		fmt.Printf("  rm %s\n", configPath)
		return fmt.Errorf("refusing to overwrite %s", configPath)
	}

	if err := os.WriteFile(configPath, []byte(exampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	ui.PrintSuccess("Configuration file created: " + configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Export FOLLOWAUDIT_ACCESS_TOKEN or put it in a .env file")
	fmt.Println("2. Run 'followaudit refresh' to take the first snapshot")
	fmt.Println("3. Later, run 'followaudit check' to find drifted accounts")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, commandFlags(cmd))
	if err != nil {
		return err
	}

	// Token is tagged yaml:"-" so it never appears in the dump
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	ui.PrintHighlight("Current Configuration")
	fmt.Println()
	fmt.Print(string(data))
	fmt.Println()

	token := auth.MaskToken(cfg.Threads.AccessToken)
	if token == "" {
		token = "(not set)"
	}
	ui.PrintInfo("Access token", token)

	fmt.Println("\nConfiguration sources (in order of priority):")
	fmt.Println("1. Command line flags")
	fmt.Println("2. Environment variables (FOLLOWAUDIT_*) and .env files")
	if configFile != "" {
		fmt.Printf("3. Configuration file: %s\n", configFile)
	} else {
		fmt.Println("3. Configuration file: (searched in default locations)")
	}
	fmt.Println("4. Default values")
	return nil
}
