// Package main implements the career_engine CLI for skill matching, resume scoring and learning plans.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-engine/internal/config"
)

var rootCmd = &cobra.Command{
	Use:               "career_engine",
	Short:             "Career skill matching and scoring engine",
	Long:              "career_engine scores resumes and candidates against roles and jobs, builds skill roadmaps and generates learning plans.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var (
	configPath string
	verbose    bool

	// cfg is populated by loadConfig before any command runs
	cfg config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func loadConfig(_ *cobra.Command, _ []string) error {
	fileCfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		fileCfg = loaded
	}
	if err := fileCfg.ApplyEnv(os.Getenv); err != nil {
		return err
	}

	cfg = fileCfg.MergeWithDefaults(config.Default())
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(newLogger(cfg.LogLevel, cfg.LogFormat))
	return nil
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(format) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
