package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	Debug       bool
	MetricsPort int
	Linger      time.Duration
	ShowVersion bool
	ShowHelp    bool
	Validate    bool

	flags *flag.FlagSet
}

func parseFlags(args []string) (*CLIConfig, error) {
	cfg := &CLIConfig{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)

	// Define flags with environment variable fallback
	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("CYCLE_DEMO_CONFIG", ""),
		"Path to a JSON or YAML scenario file; built-in scenario when empty (env: CYCLE_DEMO_CONFIG)")

	fs.StringVar(&cfg.ConfigPath, "c",
		getEnv("CYCLE_DEMO_CONFIG", ""),
		"Path to a JSON or YAML scenario file (env: CYCLE_DEMO_CONFIG)")

	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("CYCLE_DEMO_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: CYCLE_DEMO_LOG_LEVEL)")

	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("CYCLE_DEMO_LOG_FORMAT", "text"),
		"Log format: json, text (env: CYCLE_DEMO_LOG_FORMAT)")

	fs.BoolVar(&cfg.Debug, "debug",
		getEnvBool("CYCLE_DEMO_DEBUG", false),
		"Enable debug logging (env: CYCLE_DEMO_DEBUG)")

	fs.IntVar(&cfg.MetricsPort, "metrics-port",
		getEnvInt("CYCLE_DEMO_METRICS_PORT", -1),
		"Serve Prometheus metrics on this port, -1 to disable, 0 for any free port (env: CYCLE_DEMO_METRICS_PORT)")

	fs.DurationVar(&cfg.Linger, "linger",
		getEnvDuration("CYCLE_DEMO_LINGER", 0),
		"Keep serving metrics this long after the scenario, 0 until interrupted (env: CYCLE_DEMO_LINGER)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	fs.BoolVar(&cfg.Validate, "validate", false, "Validate the scenario file and exit")

	fs.Usage = func() {
		printDetailedHelp(os.Stderr, fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Override log level if debug is set
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}

	cfg.flags = fs
	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	if !slices.Contains([]string{"json", "text"}, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.MetricsPort < -1 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	if cfg.Linger < 0 {
		return fmt.Errorf("invalid linger duration: %s", cfg.Linger)
	}

	return nil
}

func printDetailedHelp(w io.Writer, fs *flag.FlagSet) {
	_, _ = fmt.Fprintf(w, `%s - circular buffer container walkthrough

Usage: %s [options]

Options:
`, appName, appName)
	fs.SetOutput(w)
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, `
Examples:
  # Run the built-in scenario
  %s

  # Run a scenario file with debug logging (shows reallocations)
  %s --config=scenario.yaml --debug

  # Expose metrics while the scenario runs and for a minute after
  %s --metrics-port=9090 --linger=1m

Version: %s
`, appName, appName, appName, Version)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
