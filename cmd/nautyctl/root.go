package main

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// newRootCmd builds the nautyctl command tree: canon/auto/orbits/gen
// subcommands sharing a --verbose flag and an optional --config file of
// run defaults.
func newRootCmd() *cobra.Command {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "nautyctl",
		Short:        "Compute automorphism groups and canonical forms of graphs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(cmd.ErrOrStderr(), charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file of run defaults")

	root.AddCommand(newCanonCmd())
	root.AddCommand(newAutoCmd())
	root.AddCommand(newOrbitsCmd())
	root.AddCommand(newGenCmd())
	return root
}
