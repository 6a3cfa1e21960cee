// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report generates the per-locale JSON and Markdown artifacts from
// the support ledger.
package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pdiddy/support-ledger/internal/ledger"
	"github.com/pdiddy/support-ledger/internal/translate"
)

// GenerateOptions configures one artifact generation run.
type GenerateOptions struct {
	// OutputDir receives the Support.<code>.json and Support.<code>.md files.
	OutputDir string

	// Native is the ledger's native locale code. Its translation map is the
	// identity map, skipping the backend call.
	Native string

	// Locales is the artifact target table.
	Locales []Locale

	// Now stamps the Markdown footers. The zero value means time.Now().
	Now time.Time
}

// Generate writes one JSON artifact per locale, plus a Markdown artifact for
// Markdown-enabled locales. Locales are processed independently: a backend
// failure degrades that locale to untranslated text, and a write failure is
// reported on errw without aborting the remaining locales. Progress goes to
// out, diagnostics to errw.
func Generate(ctx context.Context, rows []ledger.Row, b translate.Backend, opts GenerateOptions, out, errw io.Writer) error {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	texts := ledger.DistinctTexts(rows)

	for _, loc := range opts.Locales {
		fmt.Fprintf(out, "Processing %s...\n", loc.Code)

		var tmap map[string]string
		if loc.Code == opts.Native {
			tmap = translate.Identity(texts)
		} else {
			tmap = translate.MapTexts(ctx, b, texts, loc.Code, errw)
		}

		records := BuildRecords(rows, tmap)
		jsonPath, err := WriteJSON(opts.OutputDir, loc, records)
		if err != nil {
			fmt.Fprintf(errw, "warning: %v\n", err)
		} else {
			fmt.Fprintf(out, "Saved JSON: %s\n", jsonPath)
		}

		if !loc.Markdown {
			continue
		}
		if _, err := WriteMarkdown(opts.OutputDir, loc, rows, tmap, now); err != nil {
			fmt.Fprintf(errw, "warning: %v\n", err)
		}
	}

	return nil
}
