// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/support-ledger/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download published per-locale artifacts from the raw-content host",
	Long: `Fetch downloads the published Support.<locale>.json artifacts into the
output directory, using the mirror host when the primary does not respond.
Each file is validated as a record array before it is written; a locale
that fails is skipped with a warning.`,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	primary, _ := cmd.Flags().GetString("primary-url")
	if primary == "" {
		primary = viper.GetString("fetch.primary_url")
	}
	if primary == "" {
		return fmt.Errorf("no primary URL: set --primary-url or fetch.primary_url in the config file")
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if outputDir == "" {
		outputDir = configDefault("fetch.output_dir", "docs")
	}

	codes := []string{"en", "zh-CN", "zh-TW", "ja", "ko"}
	if subset, _ := cmd.Flags().GetString("locales"); subset != "" {
		codes = strings.Split(subset, ",")
		for i := range codes {
			codes[i] = strings.TrimSpace(codes[i])
		}
	}

	timeout := viper.GetDuration("fetch.timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	f := &fetch.Fetcher{
		Client:     &http.Client{Timeout: timeout},
		PrimaryURL: strings.TrimRight(primary, "/"),
		MirrorURL:  strings.TrimRight(viper.GetString("fetch.mirror_url"), "/"),
		UserAgent:  configDefault("fetch.user_agent", "support-ledger/"+version),
	}

	summary, err := f.Run(context.Background(), codes, outputDir, os.Stdout, os.Stderr)
	if err != nil {
		return err
	}
	if summary.Fetched == 0 {
		return fmt.Errorf("no artifacts fetched (%d failed)", summary.Failed)
	}
	return nil
}

func init() {
	fetchCmd.Flags().String("primary-url", "", "base URL the artifacts are published under")
	fetchCmd.Flags().String("output-dir", "", "directory fetched artifacts are written to (default docs)")
	fetchCmd.Flags().String("locales", "", "comma-separated locale codes to fetch")

	rootCmd.AddCommand(fetchCmd)
}
