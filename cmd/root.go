// Package cmd is for command line interactions with the gfa application
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jjtimmons/gfa/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// conf is the settings of the running command, set before it runs
	conf *config.Config

	logger = zap.NewNop().Sugar()
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "gfa",
	Short: `Read, filter and index Graphical Fragment Assembly (GFA 1) files.
Segments, links, containments and paths are parsed to typed records and written back canonically`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// setup reads the settings and builds the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.New()
	if err != nil {
		return err
	}

	l, err := newLogger(c.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	conf, logger = c, l
	logger.Debugw("settings", "command", cmd.CommandPath(), "settings", viper.ConfigFileUsed(), "config", c)
	return nil
}

// newLogger is a development logger when debugging and a production one otherwise
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	var z zap.Config
	if debug {
		z = zap.NewDevelopmentConfig()
	} else {
		z = zap.NewProductionConfig()
		z.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	z.OutputPaths = []string{"stderr"}

	l, err := z.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	return l.Sugar(), nil
}

// set flags
func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults in config)
	RootCmd.PersistentFlags().StringP("settings", "s", config.RootSettingsFile, "settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	RootCmd.PersistentFlags().Bool("strict", false, "stop at the first malformed line rather than skipping it")
	RootCmd.PersistentFlags().IntP("workers", "w", 4, "number of chunks of lines parsed at once")
	RootCmd.PersistentFlags().Int("chunk-lines", 10000, "number of lines in each parsed chunk")
	RootCmd.PersistentFlags().StringP("db", "d", "gfa.db", "path to the index database")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("debug", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("strict", RootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag("workers", RootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("chunk-lines", RootCmd.PersistentFlags().Lookup("chunk-lines"))
	viper.BindPFlag("db", RootCmd.PersistentFlags().Lookup("db"))
}
