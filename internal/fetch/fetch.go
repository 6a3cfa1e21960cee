// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads previously published per-locale JSON artifacts
// from a raw-content host, falling back to a mirror when the primary host
// is unreachable.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pdiddy/support-ledger/internal/httputil"
	"github.com/pdiddy/support-ledger/pkg/types"
)

// Fetcher pulls Support.<locale>.json artifacts from a base URL.
type Fetcher struct {
	Client *http.Client

	// PrimaryURL and MirrorURL are base URLs the artifact filename is
	// appended to. The mirror is used when the primary host does not
	// answer a HEAD probe.
	PrimaryURL string
	MirrorURL  string

	UserAgent string
}

// Summary holds counts from one fetch run.
type Summary struct {
	Fetched int
	Failed  int
}

// Run downloads the artifact for each locale code into outDir. Each artifact
// must parse as a SupportRecord array before it is written; a locale that
// fails to download or parse is reported on errw and skipped. Progress goes
// to out.
func (f *Fetcher) Run(ctx context.Context, codes []string, outDir string, out, errw io.Writer) (Summary, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	base := f.PrimaryURL
	if f.MirrorURL != "" && !f.probe(ctx, f.PrimaryURL) {
		fmt.Fprintf(errw, "warning: primary host unreachable, using mirror\n")
		base = f.MirrorURL
	}

	var summary Summary
	for _, code := range codes {
		name := fmt.Sprintf("Support.%s.json", code)
		data, err := f.download(ctx, base+"/"+name)
		if err != nil {
			fmt.Fprintf(errw, "warning: fetching %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		var records []types.SupportRecord
		if err := json.Unmarshal(data, &records); err != nil {
			fmt.Fprintf(errw, "warning: %s is not a valid artifact: %v\n", name, err)
			summary.Failed++
			continue
		}

		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(errw, "warning: writing %s: %v\n", path, err)
			summary.Failed++
			continue
		}

		fmt.Fprintf(out, "Fetched %s (%d records)\n", name, len(records))
		summary.Fetched++
	}

	return summary, nil
}

// probe reports whether the host behind rawURL answers a HEAD request.
func (f *Fetcher) probe(ctx context.Context, rawURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode < http.StatusInternalServerError
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, f.Client, req, 0)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
