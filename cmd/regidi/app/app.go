package app

import (
	"log/slog"

	"github.com/jsundh/regidi/pkg/logging"
	"github.com/spf13/cobra"
)

type app struct {
	cfgPath string
	cfg     *Config
}

func New() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "regidi",
		Short:         "Pronounceable digests for small integers and hashes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().
		StringVarP(&a.cfgPath, "config", "c", "", "path to configuration file")

	rootCmd.AddCommand(
		a.digestCmd(),
		a.reverseCmd(),
		a.listCmd(),
		a.scanCmd(),
		a.updateSubstitutionsCmd(),
		a.validateCmd(),
		a.serveCmd(),
	)

	return rootCmd
}

func (a *app) init() error {
	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		slog.Error("load config failed", slog.Any("error", err))
		return err
	}

	logging.InitLogger(cfg.Logger, slog.String("service", "regidi"))
	slog.Debug("config loaded", slog.String("path", a.cfgPath))

	a.cfg = cfg
	return nil
}
