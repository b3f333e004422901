// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for pwnedcheck using the
// Cobra library. It defines the root command, its persistent flags, and
// the configuration bootstrap shared by all subcommands.

package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/toeirei/pwnedcheck/internal/config"
	"github.com/toeirei/pwnedcheck/internal/generator"
	"github.com/toeirei/pwnedcheck/internal/hibp"
	"github.com/toeirei/pwnedcheck/internal/i18n"
	"github.com/toeirei/pwnedcheck/internal/logging"
	"github.com/toeirei/pwnedcheck/internal/tui"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// configDefaults are the baseline values before file/env/flag layering.
func configDefaults() map[string]any {
	return map[string]any{
		"api.base_url":     hibp.DefaultBaseURL,
		"api.timeout":      int(hibp.DefaultTimeout / time.Second),
		"generator.length": generator.DefaultLength,
		"language":         "en",
	}
}

// setupDefaultServices loads the configuration and initializes i18n. It
// runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	logging.SetVerbose(verbose)

	explicitPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig(cmd, configDefaults(), explicitPath)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run, or the config file was deleted. Persist the
			// defaults so subsequent runs have a file to inspect.
			if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
				logging.Warnf("%s", i18n.T("cli.config_write_warning", writeErr))
			} else {
				logging.Debugf("%s", i18n.T("cli.config_written"))
			}
		} else {
			return errors.New(i18n.T("cli.config_load_failed", err))
		}
	}

	i18n.Init(appConfig.Language)
	return nil
}

// newLookupClient builds the range client from the loaded configuration.
func newLookupClient() *hibp.Client {
	return hibp.NewClient(appConfig.API.BaseURL, time.Duration(appConfig.API.Timeout)*time.Second)
}

// Execute runs the CLI entrypoint. The root main package should call
// this function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only honor --config when the user explicitly set it.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. It is
// used both for the real application and for fresh instances in tests.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwnedcheck",
		Short: "Pwnedcheck tells you whether a password appears in public breach data.",
		Long: `Pwnedcheck checks candidate passwords against the Pwned Passwords
corpus using the k-anonymity range protocol: only the first five
characters of the password's SHA-1 digest are ever sent over the wire.
It can also generate cryptographically strong random passwords.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Println(compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(newLookupClient(), appConfig.Generator.Length)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to an explicit config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&showVersionFlag, "version", false, "Print version information and exit")
	cmd.PersistentFlags().String("api.base_url", hibp.DefaultBaseURL, "Base URL of the range lookup service")
	cmd.PersistentFlags().Int("api.timeout", int(hibp.DefaultTimeout/time.Second), "Lookup timeout in seconds")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newGenerateCmd())
	return cmd
}

// compositeVersion folds the ldflags build metadata into one line.
func compositeVersion() string {
	v := version
	if gitCommit != "" && gitCommit != "dev" {
		v = v + " (" + gitCommit + ")"
	}
	if buildDate != "" {
		v = v + " built: " + buildDate
	}
	return v
}
