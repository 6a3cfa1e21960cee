// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/support-ledger/internal/ledger"
)

// timestampFmt is the human-readable footer timestamp layout.
const timestampFmt = "2006-01-02 15:04:05"

// RenderMarkdown builds the Markdown document for loc: a level-1 title, a
// left-aligned pipe table with one data row per ledger row, and an italic
// footer stamped with now. The amount column renders as emphasized
// unit+amount.
func RenderMarkdown(loc Locale, rows []ledger.Row, tmap map[string]string, now time.Time) string {
	localize := func(v string) string {
		if v == "" || v == ledger.Placeholder {
			return ledger.Placeholder
		}
		if t, ok := tmap[v]; ok {
			return t
		}
		return v
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", loc.Title)
	fmt.Fprintf(&b, "| %s |\n", strings.Join(loc.Headers, " | "))

	separators := make([]string, len(loc.Headers))
	for i := range separators {
		separators[i] = ":---"
	}
	fmt.Fprintf(&b, "| %s |\n", strings.Join(separators, " | "))

	for _, row := range rows {
		item := row.Item
		if t, ok := tmap[item]; ok {
			item = t
		}
		amount := fmt.Sprintf("**%s%s**", row.Unit, row.Amount)
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			row.Time, item, amount, row.Name, localize(row.Message), localize(row.Note))
	}

	fmt.Fprintf(&b, "\n\n--- \n*%s%s*", loc.Footer, now.Format(timestampFmt))
	return b.String()
}

// WriteMarkdown writes the Markdown artifact for loc to dir/Support.<code>.md,
// overwriting any existing file. It returns the artifact path.
func WriteMarkdown(dir string, loc Locale, rows []ledger.Row, tmap map[string]string, now time.Time) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("Support.%s.md", loc.Code))
	if err := os.WriteFile(path, []byte(RenderMarkdown(loc, rows, tmap, now)), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
