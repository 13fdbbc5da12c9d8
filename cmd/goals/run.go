package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/goals"
	lifecycleadapter "github.com/aretw0/goals/pkg/adapters/lifecycle"
	"github.com/aretw0/goals/pkg/config"
	"github.com/aretw0/goals/pkg/tui"
)

var (
	runVariant  string
	runWatch    bool
	traceEvents bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive goal list",
	Long: `Run opens the goal list in the terminal.

Keys: a add, space toggle, d delete, q quit. In the entry form, enter adds
and esc cancels. The styled variant asks before deleting.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, path, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}
		if runVariant != "" {
			cfg.Variant = config.Variant(runVariant)
			if err := cfg.Validate(); err != nil {
				fatal("Invalid --variant", err)
			}
		}

		ctrl, err := goals.New(goals.WithConfig(cfg), goals.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to create goal list", err)
		}
		defer ctrl.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var reloads <-chan config.Config
		if runWatch {
			if path == "" {
				fatal("Cannot watch config", fmt.Errorf("no config file found; pass --config"))
			}
			w := config.NewWatcher(path, slog.Default())
			if err := w.Start(ctx); err != nil {
				fatal("Failed to watch config", err)
			}
			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = w.Stop(stopCtx)
			}()
			reloads = w.Updates()
		}

		if traceEvents {
			src := lifecycleadapter.NewSource(ctrl)
			if err := src.Start(ctx); err != nil {
				fatal("Failed to trace events", err)
			}
			lifecycle.Go(ctx, func(ctx context.Context) error {
				for e := range src.Events() {
					slog.Info("goal event", "event", e.String())
				}
				return nil
			})
		}

		if err := tui.Run(ctx, tui.New(ctrl, cfg), reloads); err != nil {
			fatal("Goal list exited", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runVariant, "variant", "", "Visual variant: plain or styled (overrides config)")
	runCmd.Flags().BoolVarP(&runWatch, "watch-config", "w", false, "Reload the theme when the config file changes")
	runCmd.Flags().BoolVar(&traceEvents, "trace-events", false, "Log every change event (use with --log-file)")
}
