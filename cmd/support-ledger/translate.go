// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/support-ledger/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate <strings|file> <target-locale>",
	Short: "Translate an ad-hoc list of strings into one locale",
	Long: `Translate localizes a JSON array of strings into the target locale and
prints the result as a single JSON-array line on stdout, preserving input
order. The first argument is read as a file when it names an existing file,
otherwise it is parsed as an inline JSON array.

Empty, whitespace-only, and "-" entries pass through untouched. If the
batch request fails, entries are retried one by one; entries that still
fail keep their original value. The stdout line is always valid JSON of
the same length as the input; diagnostics go to stderr only.`,
	Args: cobra.ExactArgs(2),
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	texts, err := readTextsArg(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "input error: %v\n", err)
		fmt.Println("[]")
		return nil
	}
	if len(texts) == 0 {
		fmt.Println("[]")
		return nil
	}

	results := translate.Sequence(context.Background(), newBackend(), texts, args[1], os.Stderr)

	line, err := translate.MarshalASCII(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding error: %v\n", err)
		fmt.Println("[]")
		return nil
	}
	fmt.Println(string(line))
	return nil
}

// readTextsArg resolves the input argument: the contents of an existing
// file, or the argument itself, parsed as a JSON array of strings.
func readTextsArg(arg string) ([]string, error) {
	data := []byte(arg)
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		data, err = os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
	}

	var texts []string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("expected a JSON array of strings: %w", err)
	}
	return texts, nil
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
