package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	defaultPollInterval  = 2 * time.Second
	defaultSettleDelay   = 600 * time.Millisecond
	defaultSettleTimeout = 5 * time.Second
	defaultLogLevel      = "info"
	envPrefix            = "vacuum"
)

// Settle strategies understood by the daemon.
const (
	StrategyDelay = "delay"
	StrategyPoll  = "poll"
)

// Config aggregates tunable intervals and paths for the daemon.
type Config struct {
	// PollInterval is how often the process directory is re-enumerated to detect launches and exits.
	PollInterval time.Duration
	// SettleDelay is how long a clean waits for the OS to tear processes down before refreshing.
	SettleDelay time.Duration
	// SettleStrategy is StrategyDelay (wait SettleDelay) or StrategyPoll (re-enumerate
	// until the terminated processes are gone, at most SettleTimeout).
	SettleStrategy string
	SettleTimeout  time.Duration
	// PrefsPath is where the safe-list preference is stored.
	PrefsPath      string
	LogLevel       string
	LogDevelopment bool
}

// Load builds a Config from an optional JSON file path plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		PollInterval:   defaultPollInterval,
		SettleDelay:    defaultSettleDelay,
		SettleStrategy: StrategyDelay,
		SettleTimeout:  defaultSettleTimeout,
		PrefsPath:      DefaultPrefsPath(),
		LogLevel:       defaultLogLevel,
	}

	if path != "" {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		merge(&cfg, fileCfg)
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if cfg.SettleStrategy != StrategyDelay && cfg.SettleStrategy != StrategyPoll {
		return cfg, fmt.Errorf("unknown settle strategy %q", cfg.SettleStrategy)
	}
	return cfg, nil
}

// DefaultPrefsPath returns the per-user preference file location:
// ~/Library/Preferences/vacuum on macOS, the user config dir elsewhere.
func DefaultPrefsPath() string {
	home, _ := os.UserHomeDir()
	configDir, _ := os.UserConfigDir()
	return prefsPathFor(runtime.GOOS, home, configDir)
}

func prefsPathFor(goos, home, configDir string) string {
	dir := configDir
	if goos == "darwin" && home != "" {
		dir = filepath.Join(home, "Library", "Preferences")
	}
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vacuum", "prefs.toml")
}

func merge(dst *Config, src Config) {
	if src.PollInterval != 0 {
		dst.PollInterval = src.PollInterval
	}
	if src.SettleDelay != 0 {
		dst.SettleDelay = src.SettleDelay
	}
	if src.SettleStrategy != "" {
		dst.SettleStrategy = src.SettleStrategy
	}
	if src.SettleTimeout != 0 {
		dst.SettleTimeout = src.SettleTimeout
	}
	if src.PrefsPath != "" {
		dst.PrefsPath = src.PrefsPath
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogDevelopment {
		dst.LogDevelopment = true
	}
}

type envConfig struct {
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL"`
	SettleDelay    time.Duration `envconfig:"SETTLE_DELAY"`
	SettleStrategy string        `envconfig:"SETTLE_STRATEGY"`
	SettleTimeout  time.Duration `envconfig:"SETTLE_TIMEOUT"`
	PrefsPath      string        `envconfig:"PREFS_PATH"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
	LogDev         bool          `envconfig:"LOG_DEV"`
}

func applyEnvOverrides(cfg *Config) error {
	var env envConfig
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	if env.PollInterval < 0 {
		return errors.New("VACUUM_POLL_INTERVAL must be > 0")
	}
	if env.SettleDelay < 0 {
		return errors.New("VACUUM_SETTLE_DELAY must be > 0")
	}
	if env.SettleTimeout < 0 {
		return errors.New("VACUUM_SETTLE_TIMEOUT must be > 0")
	}
	merge(cfg, Config{
		PollInterval:   env.PollInterval,
		SettleDelay:    env.SettleDelay,
		SettleStrategy: env.SettleStrategy,
		SettleTimeout:  env.SettleTimeout,
		PrefsPath:      env.PrefsPath,
		LogLevel:       env.LogLevel,
		LogDevelopment: env.LogDev,
	})
	return nil
}

type fileConfig struct {
	PollInterval   string `json:"poll_interval"`
	SettleDelay    string `json:"settle_delay"`
	SettleStrategy string `json:"settle_strategy"`
	SettleTimeout  string `json:"settle_timeout"`
	PrefsPath      string `json:"prefs_path"`
	LogLevel       string `json:"log_level"`
	LogDevelopment bool   `json:"log_development"`
}

func loadFromFile(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return cfg, err
	}

	if raw.PollInterval != "" {
		dur, err := parsePositive("poll_interval", raw.PollInterval)
		if err != nil {
			return cfg, err
		}
		cfg.PollInterval = dur
	}
	if raw.SettleDelay != "" {
		dur, err := parsePositive("settle_delay", raw.SettleDelay)
		if err != nil {
			return cfg, err
		}
		cfg.SettleDelay = dur
	}
	if raw.SettleTimeout != "" {
		dur, err := parsePositive("settle_timeout", raw.SettleTimeout)
		if err != nil {
			return cfg, err
		}
		cfg.SettleTimeout = dur
	}
	cfg.SettleStrategy = raw.SettleStrategy
	cfg.PrefsPath = raw.PrefsPath
	cfg.LogLevel = raw.LogLevel
	cfg.LogDevelopment = raw.LogDevelopment
	return cfg, nil
}

func parsePositive(key, value string) (time.Duration, error) {
	dur, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if dur <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return dur, nil
}
