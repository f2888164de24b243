package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"followaudit/pkg/audit"
	"followaudit/pkg/auth"
	"followaudit/pkg/config"
	"followaudit/pkg/errors"
	"followaudit/pkg/logger"
	"followaudit/pkg/storage"
	"followaudit/pkg/threads"
	"followaudit/pkg/ui"
)

// commandFlags collects the global flags the user actually set
func commandFlags(cmd *cobra.Command) map[string]interface{} {
	flags := make(map[string]interface{})
	set := func(name string, value interface{}) {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			flags[name] = value
		}
	}

	set("token", tokenFlag)
	set("base-url", baseURL)
	set("cache-file", cacheFile)
	set("timeout", timeout)
	set("log-level", logLevel)
	set("log-file", logFile)
	return flags
}

// loadConfig loads the configuration and initializes the global logger.
// Console logging is turned off for the interactive form unless a log file
// is configured.
func loadConfig(cmd *cobra.Command, interactive bool) (*config.Config, error) {
	cfg, err := config.Load(configFile, commandFlags(cmd))
	if err != nil {
		return nil, err
	}

	logCfg := cfg.Logging
	if interactive && logCfg.File == "" {
		logCfg.Level = "disabled"
	}
	if err := logger.Initialize(&logCfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"version":    version,
		"command":    cmd.Name(),
		"cache_file": cfg.Storage.CacheFile,
		"base_url":   cfg.Threads.BaseURL,
	}).Debug("followaudit starting")

	return cfg, nil
}

// resolveToken finds the access token: flag or environment (already merged
// into the configuration), then the hidden prompt when allowed
func resolveToken(cfg *config.Config, allowPrompt bool) (string, error) {
	sources := []auth.CredentialSource{
		auth.NewStaticSource("flag/env", cfg.Threads.AccessToken),
		auth.NewEnvironmentSource(auth.EnvAccessToken),
	}
	if allowPrompt {
		sources = append(sources, auth.NewPromptSource(os.Stdin, os.Stderr))
	}
	return auth.NewResolver(logger.GetLogger(), sources...).Resolve()
}

// newAudit wires the Threads client and the cache file into a FollowAudit
func newAudit(cfg *config.Config, token string, notifier audit.Notifier) (*audit.FollowAudit, error) {
	log := logger.GetLogger()

	client := threads.NewClient(cfg.Threads.BaseURL, token, cfg.Threads.Timeout, log)
	if cfg.Threads.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.Threads.UserAgent)
	}
	store := storage.NewFollowStore(cfg.Storage.CacheFile, log)

	return audit.New(token, client, store, notifier, audit.WithLogger(log))
}

// prepareAudit runs the shared start of every online command: config,
// token, construction and cache load
func prepareAudit(cmd *cobra.Command) (*audit.FollowAudit, *config.Config, error) {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return nil, nil, err
	}

	if !noLogo {
		ui.PrintLogo()
	}

	token, err := resolveToken(cfg, true)
	if err != nil {
		return nil, nil, err
	}

	a, err := newAudit(cfg, token, ui.NewConsoleNotifier(os.Stdout))
	if err != nil {
		return nil, nil, err
	}

	if err := a.Load(); err != nil {
		return nil, nil, err
	}
	return a, cfg, nil
}

// printFailure reports a fatal error, with the token guide for a missing
// credential
func printFailure(err error) {
	if errors.IsType(err, errors.ErrorTypeMissingCredential) {
		ui.PrintError("Missing access token")
		fmt.Fprintln(os.Stdout)
		auth.ShowTokenGuide(os.Stdout)
		return
	}
	ui.PrintError("Error", err)
}

// sendDesktopNotification is a no-op unless --notify is set
func sendDesktopNotification(message string) {
	if !notify {
		return
	}
	ui.NewDesktopNotifier().Send("followaudit", message)
}
