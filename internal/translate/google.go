// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/support-ledger/internal/httputil"
)

// googleAPIBase is the Cloud Translation v2 endpoint. Declared as a var so
// tests can substitute an httptest server.
var googleAPIBase = "https://translation.googleapis.com/language/translate/v2"

// GoogleBackend translates text through the Google Cloud Translation v2 REST
// API. The source language is omitted from requests so the service detects it.
type GoogleBackend struct {
	Client     *http.Client
	APIKey     string
	UserAgent  string
	MaxRetries int
}

// Name returns the backend identifier.
func (b *GoogleBackend) Name() string { return "google_translate" }

// TranslateBatch translates texts into target with a single API request. The
// returned slice has exactly one entry per input text, in input order.
func (b *GoogleBackend) TranslateBatch(ctx context.Context, texts []string, target string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if target == "" {
		return nil, fmt.Errorf("empty target locale")
	}

	form := url.Values{
		"target": {target},
		"format": {"text"},
	}
	for _, t := range texts {
		form.Add("q", t)
	}
	if b.APIKey != "" {
		form.Set("key", b.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleAPIBase,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, b.Client, req, b.MaxRetries)
	if err != nil {
		return nil, fmt.Errorf("translation API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("translation API returned HTTP %d", resp.StatusCode)
	}

	var tr translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("parsing translation response: %w", err)
	}

	if len(tr.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("translation API returned %d translations for %d texts",
			len(tr.Data.Translations), len(texts))
	}

	out := make([]string, len(texts))
	for i, t := range tr.Data.Translations {
		out[i] = t.TranslatedText
	}
	return out, nil
}

// Translate translates a single string into target.
func (b *GoogleBackend) Translate(ctx context.Context, text string, target string) (string, error) {
	out, err := b.TranslateBatch(ctx, []string{text}, target)
	if err != nil {
		return "", err
	}
	return out[0], nil
}

// Cloud Translation v2 JSON structures.
type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}
