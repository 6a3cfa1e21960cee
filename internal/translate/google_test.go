// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestGoogleTranslateBatchRequestForm(t *testing.T) {
	var captured url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		captured = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"translations":[
			{"translatedText":"コーヒー","detectedSourceLanguage":"en"},
			{"translatedText":"ありがとう","detectedSourceLanguage":"en"}
		]}}`)
	}))
	defer ts.Close()

	old := googleAPIBase
	googleAPIBase = ts.URL
	defer func() { googleAPIBase = old }()

	b := &GoogleBackend{Client: ts.Client(), APIKey: "k-123"}
	out, err := b.TranslateBatch(context.Background(), []string{"Coffee", "Thanks!"}, "ja")
	if err != nil {
		t.Fatalf("TranslateBatch: %v", err)
	}

	if got := captured["q"]; len(got) != 2 || got[0] != "Coffee" || got[1] != "Thanks!" {
		t.Errorf("q params = %v", got)
	}
	if got := captured.Get("target"); got != "ja" {
		t.Errorf("target = %q, want %q", got, "ja")
	}
	if got := captured.Get("format"); got != "text" {
		t.Errorf("format = %q, want %q", got, "text")
	}
	if got := captured.Get("key"); got != "k-123" {
		t.Errorf("key = %q, want %q", got, "k-123")
	}
	// Source must stay unset so the service auto-detects it.
	if got := captured.Get("source"); got != "" {
		t.Errorf("source = %q, want unset", got)
	}

	if out[0] != "コーヒー" || out[1] != "ありがとう" {
		t.Errorf("out = %v", out)
	}
}

func TestGoogleTranslateBatchErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"403 quota", "", http.StatusForbidden},
		{"500 server error", "", http.StatusInternalServerError},
		{"count mismatch", `{"data":{"translations":[{"translatedText":"one"}]}}`, http.StatusOK},
		{"malformed body", `{"data":`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.code)
				fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			old := googleAPIBase
			googleAPIBase = ts.URL
			defer func() { googleAPIBase = old }()

			b := &GoogleBackend{Client: ts.Client()}
			if _, err := b.TranslateBatch(context.Background(), []string{"a", "b"}, "en"); err == nil {
				t.Fatal("TranslateBatch should fail")
			}
		})
	}
}

func TestGoogleTranslateBatchEdgeCases(t *testing.T) {
	b := &GoogleBackend{Client: http.DefaultClient}

	out, err := b.TranslateBatch(context.Background(), nil, "en")
	if err != nil || out != nil {
		t.Errorf("empty batch: out = %v, err = %v", out, err)
	}

	if _, err := b.TranslateBatch(context.Background(), []string{"a"}, ""); err == nil {
		t.Error("empty target should fail before any request")
	}
}

func TestGoogleTranslateSingle(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":{"translations":[{"translatedText":"Hola"}]}}`)
	}))
	defer ts.Close()

	old := googleAPIBase
	googleAPIBase = ts.URL
	defer func() { googleAPIBase = old }()

	b := &GoogleBackend{Client: ts.Client()}
	got, err := b.Translate(context.Background(), "Hello", "es")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Hola" {
		t.Errorf("Translate = %q, want %q", got, "Hola")
	}
}
