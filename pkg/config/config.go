package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the Threads API root
	DefaultBaseURL = "https://www.threads.net/api/v1"

	// DefaultCacheFileName is the name of the cached follow list
	DefaultCacheFileName = "following_list.json"

	appName = "followaudit"
)

// Config holds all configuration options for followaudit
type Config struct {
	// Threads API settings
	Threads ThreadsConfig `yaml:"threads" json:"threads"`

	// Local follow list cache
	Storage StorageConfig `yaml:"storage" json:"storage"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ThreadsConfig holds Threads API configuration. The access token is never
// written back to a config file.
type ThreadsConfig struct {
	AccessToken string        `yaml:"-" json:"-"`
	BaseURL     string        `yaml:"base_url" json:"base_url"`
	UserAgent   string        `yaml:"user_agent" json:"user_agent"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout"`
}

// StorageConfig holds the cache file location
type StorageConfig struct {
	CacheFile string `yaml:"cache_file" json:"cache_file"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file" json:"file"`
}

// DefaultConfig returns a Config instance with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Threads: ThreadsConfig{
			BaseURL:   DefaultBaseURL,
			UserAgent: "followaudit/1.0",
			Timeout:   0, // http.Client default: no timeout
		},
		Storage: StorageConfig{
			CacheFile: DefaultCacheFile(),
		},
		Logging: LoggingConfig{
			Level: "warn",
			File:  "",
		},
	}
}

// DefaultCacheFile returns the per-OS data location of the follow list cache,
// or the bare file name in the working directory if no data directory exists.
func DefaultCacheFile() string {
	dir, err := dataDirectory()
	if err != nil {
		return DefaultCacheFileName
	}
	return filepath.Join(dir, DefaultCacheFileName)
}

// dataDirectory returns the appropriate data directory for the current OS
func dataDirectory() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA environment variable not set")
		}
		return filepath.Join(appData, appName), nil
	default:
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return filepath.Join(xdgDataHome, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() error {
	if token := os.Getenv("FOLLOWAUDIT_ACCESS_TOKEN"); token != "" {
		c.Threads.AccessToken = token
	}
	if baseURL := os.Getenv("FOLLOWAUDIT_BASE_URL"); baseURL != "" {
		c.Threads.BaseURL = baseURL
	}
	if userAgent := os.Getenv("FOLLOWAUDIT_USER_AGENT"); userAgent != "" {
		c.Threads.UserAgent = userAgent
	}
	if timeout := os.Getenv("FOLLOWAUDIT_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid FOLLOWAUDIT_TIMEOUT: %w", err)
		}
		c.Threads.Timeout = d
	}

	if cacheFile := os.Getenv("FOLLOWAUDIT_CACHE_FILE"); cacheFile != "" {
		c.Storage.CacheFile = cacheFile
	}

	if logLevel := os.Getenv("FOLLOWAUDIT_LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile := os.Getenv("FOLLOWAUDIT_LOG_FILE"); logFile != "" {
		c.Logging.File = logFile
	}

	return nil
}

// LoadFromFile loads configuration from a YAML file
func (c *Config) LoadFromFile(path string) error {
	// If path is empty, try default locations
	if path == "" {
		path = c.findConfigFile()
		if path == "" {
			return nil // No config file found, not an error
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// findConfigFile searches for config file in standard locations
func (c *Config) findConfigFile() string {
	home := os.Getenv("HOME")
	locations := []string{
		".followaudit.yaml",
		".followaudit.yml",
		filepath.Join(home, ".config", appName, "config.yaml"),
		filepath.Join(home, ".config", appName, "config.yml"),
		filepath.Join(home, ".followaudit.yaml"),
	}

	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}

	return ""
}

// Validate checks if the configuration is valid. The access token is not
// checked here; a missing token is reported where an operation needs it.
func (c *Config) Validate() error {
	var errs []error

	if c.Threads.BaseURL == "" {
		errs = append(errs, errors.New("threads base URL is required"))
	} else if u, err := url.Parse(c.Threads.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("threads base URL is not absolute: %q", c.Threads.BaseURL))
	}
	if c.Threads.Timeout < 0 {
		errs = append(errs, errors.New("timeout cannot be negative"))
	}

	if c.Storage.CacheFile == "" {
		errs = append(errs, errors.New("cache file path is required"))
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "disabled": true,
	}
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, errors.New("invalid log level"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeCommandLineFlags merges command line flags into the configuration
func (c *Config) MergeCommandLineFlags(flags map[string]interface{}) {
	if token, ok := flags["token"].(string); ok && token != "" {
		c.Threads.AccessToken = token
	}
	if baseURL, ok := flags["base-url"].(string); ok && baseURL != "" {
		c.Threads.BaseURL = baseURL
	}
	if timeout, ok := flags["timeout"].(time.Duration); ok && timeout > 0 {
		c.Threads.Timeout = timeout
	}
	if cacheFile, ok := flags["cache-file"].(string); ok && cacheFile != "" {
		c.Storage.CacheFile = cacheFile
	}
	if logLevel, ok := flags["log-level"].(string); ok && logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFile, ok := flags["log-file"].(string); ok && logFile != "" {
		c.Logging.File = logFile
	}
}

// Load loads configuration from all sources with proper precedence
// Precedence order: Command line flags > Environment variables > .env file > Config file > Defaults
func Load(configPath string, flags map[string]interface{}) (*Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(filepath.Join(os.Getenv("HOME"), ".followaudit.env"))

	config := DefaultConfig()

	if err := config.LoadFromFile(configPath); err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	if err := config.LoadFromEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	config.MergeCommandLineFlags(flags)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}
