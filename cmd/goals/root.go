package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/goals"
	"github.com/aretw0/goals/pkg/config"
)

var (
	verbose    bool
	configPath string
	logFile    string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goals",
	Short: "A small goal list for the terminal",
	Long: `Goals keeps a list of short text goals in memory.
Add them through an entry form, mark them done and delete them.
Nothing is saved when the program exits.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		var out io.Writer = os.Stderr
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				fatal("Failed to open log file", err)
			}
			out = f
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(out, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: nearest .goals.yaml or goals.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to a file instead of stderr")
}

// loadConfig resolves the config file from --config or by searching upwards
// from the working directory. Without a file it returns the defaults and an
// empty path.
func loadConfig() (config.Config, string, error) {
	path := configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, err := goals.FindConfig(wd); err == nil {
				path = found
			}
		}
	}
	if path == "" {
		return config.Default(), "", nil
	}

	cfg, err := goals.LoadConfig(path)
	if err != nil {
		return config.Config{}, path, err
	}
	slog.Debug("config loaded", "path", path, "variant", cfg.Variant)
	return cfg, path, nil
}
