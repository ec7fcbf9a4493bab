package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"geoclip/internal/config"
	"geoclip/internal/planar"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	planar.SetLogger(logger)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	planar.SetLogger(nil)
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "geoclip",
		Short:             "Clip planar geometries to a bounding box",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
	}
	a.addGlobalFlags(root.PersistentFlags())
	root.AddCommand(
		newViewCmd(a),
		newClipCmd(a),
		newContainsCmd(a),
		newProjectCmd(a),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
