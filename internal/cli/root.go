// Package cli implements the reviewctl commands. reviewctl plays the
// caller's part for the review engine: it loads an order or draft group,
// shows the review screen, replays recorded user actions and hands the
// outcome to a file sink.
package cli

import (
	"time"

	"github.com/ncc-portal/order-review/internal/config"
	"github.com/ncc-portal/order-review/internal/logger"
	"github.com/ncc-portal/order-review/internal/money"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	cfgFile string
	verbose bool

	cfg       *config.Config
	log       *zap.Logger
	loc       *time.Location
	formatter money.Formatter
	now       func() time.Time
}

// NewRootCmd builds the reviewctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:   "reviewctl",
		Short: "Review supplier purchase orders and draft delivery plans",
		Long: `reviewctl shows the supplier review screen for an order or a draft
delivery plan group, replays recorded user actions against it and writes
the confirm or reject outcome to JSON or XLSX files.

Example Usage:
  reviewctl seed --out order.yaml
  reviewctl show --fixture order.yaml
  reviewctl replay --fixture order.yaml --script actions.yaml --export xlsx`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "Path to a config file (env vars override it)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newShowCmd(a),
		newReplayCmd(a),
		newSeedCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	log, err := logger.New(level, cfg.LogFormat)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.loc = loc
	a.formatter = money.NewVND(cfg.Locale)
	return nil
}
