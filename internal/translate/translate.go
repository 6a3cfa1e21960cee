// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate localizes ledger free text through a machine-translation
// backend. The backend reports failure explicitly; the degradation policy
// (identity map, sequential retry, pass-through) lives in the callers here,
// so a transport error and an empty translation are never conflated.
package translate

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Backend translates text into a target locale. The source language is
// always auto-detected by the service.
type Backend interface {
	Name() string
	TranslateBatch(ctx context.Context, texts []string, target string) ([]string, error)
	Translate(ctx context.Context, text string, target string) (string, error)
}

// Placeholder is the literal stand-in for an intentionally empty value.
// Entries equal to it are never sent to the backend.
const Placeholder = "-"

// Skippable reports whether s should bypass translation entirely: empty,
// whitespace-only, or the placeholder.
func Skippable(s string) bool {
	t := strings.TrimSpace(s)
	return t == "" || t == Placeholder
}

// Identity returns the self-map for texts.
func Identity(texts []string) map[string]string {
	m := make(map[string]string, len(texts))
	for _, t := range texts {
		m[t] = t
	}
	return m
}

// MapTexts builds the source-to-translated map for one locale with a single
// batch request. On any backend failure it warns on w and returns the
// identity map, so the caller can always produce output. Entries the backend
// returns empty keep their source value.
func MapTexts(ctx context.Context, b Backend, texts []string, target string, w io.Writer) map[string]string {
	if len(texts) == 0 {
		return map[string]string{}
	}

	out, err := b.TranslateBatch(ctx, texts, target)
	if err != nil || len(out) != len(texts) {
		fmt.Fprintf(w, "warning: %s: translation to %s failed: %v; falling back to original text\n", b.Name(), target, err)
		return Identity(texts)
	}

	m := make(map[string]string, len(texts))
	for i, t := range texts {
		if out[i] != "" {
			m[t] = out[i]
		} else {
			m[t] = t
		}
	}
	return m
}

// Sequence translates texts into target preserving positions. Skippable
// entries pass through untouched. The rest go out as one batch; if the batch
// fails, each entry is retried individually, and entries whose retry also
// fails keep their original value. The result always has the same length and
// order as the input.
func Sequence(ctx context.Context, b Backend, texts []string, target string, w io.Writer) []string {
	results := append([]string(nil), texts...)

	var indices []int
	var batch []string
	for i, t := range texts {
		if Skippable(t) {
			continue
		}
		indices = append(indices, i)
		batch = append(batch, t)
	}
	if len(batch) == 0 {
		return results
	}

	out, err := b.TranslateBatch(ctx, batch, target)
	if err == nil && len(out) != len(batch) {
		err = fmt.Errorf("got %d translations for %d entries", len(out), len(batch))
	}
	if err == nil {
		for j, i := range indices {
			if out[j] != "" {
				results[i] = out[j]
			}
		}
		return results
	}

	fmt.Fprintf(w, "warning: %s: batch translation to %s failed: %v; retrying entries sequentially\n", b.Name(), target, err)
	for j, i := range indices {
		one, err := b.Translate(ctx, batch[j], target)
		if err != nil || one == "" {
			continue
		}
		results[i] = one
	}
	return results
}
