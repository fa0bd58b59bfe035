// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mailwright CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/mailwright/internal/config"
	"github.com/pdiddy/mailwright/internal/gateway"
	"github.com/pdiddy/mailwright/internal/logging"
	"github.com/pdiddy/mailwright/internal/secrets"
	"github.com/pdiddy/mailwright/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const secretsDir = ".secrets/"

// rootCmd is the base command for the mailwright CLI.
var rootCmd = &cobra.Command{
	Use:   "mailwright",
	Short: "Turn rough notes into ready-to-send emails",
	Long: `mailwright asks a hosted language model to structure a brain dump into an
email request and to write friendly, formal and direct drafts of it.

Run "mailwright serve" to expose both steps over HTTP, or use the braindump
and draft subcommands directly from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(secretsDir, os.Stderr)
		if err != nil {
			return err
		}
		if names := s.Names(); len(names) > 0 {
			sort.Strings(names)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", names)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./mailwright.yaml or ~/.config/mailwright/mailwright.yaml)")
	pf.String("model", "", "model identifier (default "+types.DefaultModel+")")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("archive-dir", "", "directory for the local run history")

	config.SetDefaults(viper.GetViper())
	bindFlag(config.KeyGatewayModel, pf.Lookup("model"))
	bindFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	bindFlag(config.KeyArchiveDir, pf.Lookup("archive-dir"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mailwright")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mailwright"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration for a command.
func loadConfig() (types.Config, error) {
	return config.Load(viper.GetViper(), secretsDir, os.Stderr)
}

// newGateway builds the model client and logger shared by the commands
// that call the model.
func newGateway(cfg types.Config) (*gateway.Client, *zap.Logger, error) {
	if err := config.RequireAPIKey(cfg); err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return gateway.NewClient(cfg.Gateway, nil), log, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
