// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/support-ledger/internal/ledger"
	"github.com/pdiddy/support-ledger/internal/report"
	"github.com/pdiddy/support-ledger/internal/translate"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate localized JSON and Markdown artifacts from the ledger",
	Long: `Generate reads the support ledger CSV, translates its free-text fields
into every configured locale, and writes Support.<locale>.json for each
locale plus Support.<locale>.md for the Markdown-enabled subset.

A missing or unparsable ledger aborts the run before any output is written.
A translation failure for one locale degrades that locale to untranslated
text and never blocks the others.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath == "" {
		csvPath = configDefault("ledger.csv_path", "docs/Support.csv")
	}
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = configDefault("report.output_dir", "docs")
	}
	native, _ := cmd.Flags().GetString("native")
	if native == "" {
		native = configDefault("report.native_locale", "zh-CN")
	}

	rows, err := ledger.Load(csvPath)
	if err != nil {
		return err
	}

	locales, err := localesFromFlags(cmd)
	if err != nil {
		return err
	}

	opts := report.GenerateOptions{
		OutputDir: outputDir,
		Native:    native,
		Locales:   locales,
	}
	return report.Generate(context.Background(), rows, newBackend(), opts, os.Stdout, os.Stderr)
}

// localesFromFlags resolves the locale table (built-in or --locale-config
// file) and applies the --locales subset filter.
func localesFromFlags(cmd *cobra.Command) ([]report.Locale, error) {
	localeFile, _ := cmd.Flags().GetString("locale-config")
	if localeFile == "" {
		localeFile = viper.GetString("report.locale_file")
	}

	locales := report.DefaultLocales()
	if localeFile != "" {
		var err error
		locales, err = report.LoadLocales(localeFile)
		if err != nil {
			return nil, err
		}
	}

	subset, _ := cmd.Flags().GetString("locales")
	if subset == "" {
		return locales, nil
	}
	return report.Filter(locales, strings.Split(subset, ","))
}

// newBackend builds the translation backend from config and secrets.
func newBackend() *translate.GoogleBackend {
	timeout := viper.GetDuration("translate.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &translate.GoogleBackend{
		Client:     &http.Client{Timeout: timeout},
		APIKey:     secretDefault("google-translate-api-key", viper.GetString("translate.api_key")),
		UserAgent:  configDefault("translate.user_agent", "support-ledger/"+version),
		MaxRetries: viper.GetInt("translate.max_retries"),
	}
}

func init() {
	generateCmd.Flags().String("csv", "", "ledger CSV path (default docs/Support.csv)")
	generateCmd.Flags().String("output-dir", "", "artifact output directory (default docs)")
	generateCmd.Flags().String("native", "", "ledger native locale, translation skipped (default zh-CN)")
	generateCmd.Flags().String("locales", "", "comma-separated subset of locale codes to generate")
	generateCmd.Flags().String("locale-config", "", "YAML file overriding the built-in locale table")

	rootCmd.AddCommand(generateCmd)
}
