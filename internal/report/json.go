// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/support-ledger/internal/ledger"
	"github.com/pdiddy/support-ledger/pkg/types"
)

// BuildRecords converts ledger rows into artifact records for one locale,
// applying tmap to the translatable fields. Empty message and note values
// become the placeholder; translation is looked up, never redone, so a source
// string renders identically everywhere it appears.
func BuildRecords(rows []ledger.Row, tmap map[string]string) []types.SupportRecord {
	localize := func(v string) string {
		if v == "" || v == ledger.Placeholder {
			return v
		}
		if t, ok := tmap[v]; ok {
			return t
		}
		return v
	}
	orPlaceholder := func(v string) string {
		if v == "" {
			return ledger.Placeholder
		}
		return v
	}

	records := make([]types.SupportRecord, len(rows))
	for i, row := range rows {
		records[i] = types.SupportRecord{
			Time:    row.Time,
			Item:    localize(row.Item),
			Amount:  row.Amount,
			Unit:    row.Unit,
			Message: orPlaceholder(localize(row.Message)),
			Name:    row.Name,
			Note:    orPlaceholder(localize(row.Note)),
		}
	}
	return records
}

// WriteJSON writes the JSON artifact for loc to dir/Support.<code>.json,
// overwriting any existing file. Non-ASCII text is preserved literally.
// It returns the artifact path.
func WriteJSON(dir string, loc Locale, records []types.SupportRecord) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("Support.%s.json", loc.Code))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
