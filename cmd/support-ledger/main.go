// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the support-ledger CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/support-ledger/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// configDefault returns the viper value for key when set, otherwise fallback.
// Flags with empty defaults use this so the config file can supply the value.
func configDefault(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// rootCmd is the base command for the support-ledger CLI.
var rootCmd = &cobra.Command{
	Use:   "support-ledger",
	Short: "Localized artifact pipeline for the donor support ledger",
	Long: `support-ledger converts the donor support ledger (a CSV file) into
localized JSON and Markdown artifacts, using a machine-translation service
for the free-text fields (item, message, note).

Each operation is a subcommand: generate builds the per-locale artifacts,
translate localizes an ad-hoc list of strings, and fetch pulls previously
published artifacts from the raw-content host.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./support-ledger.yaml or ~/.config/support-ledger/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("support-ledger")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "support-ledger"))
		}
	}

	viper.SetEnvPrefix("SUPPORT_LEDGER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
