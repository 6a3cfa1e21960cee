// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger reads the support ledger CSV and collects its translatable text.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Native-language column labels of the ledger CSV header row.
const (
	colTime    = "收款时间"
	colItem    = "收款项"
	colAmount  = "金额"
	colUnit    = "单位"
	colMessage = "留言"
	colName    = "昵称"
	colNote    = "备注"
)

// Placeholder is the literal value the ledger uses for an intentionally
// empty message or note.
const Placeholder = "-"

// Row is one ledger entry in on-disk order. All fields are free text.
type Row struct {
	Time    string
	Item    string
	Amount  string
	Unit    string
	Message string
	Name    string
	Note    string
}

// Load parses the ledger CSV at path. Fields are located by header label, so
// column order in the file does not matter; columns missing from the header
// yield empty field values. Row order is preserved.
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing ledger %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ledger %s has no header row", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, label := range records[0] {
		index[strings.TrimSpace(label)] = i
	}

	field := func(record []string, label string) string {
		i, ok := index[label]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Row{
			Time:    field(record, colTime),
			Item:    field(record, colItem),
			Amount:  field(record, colAmount),
			Unit:    field(record, colUnit),
			Message: field(record, colMessage),
			Name:    field(record, colName),
			Note:    field(record, colNote),
		})
	}
	return rows, nil
}

// DistinctTexts returns the distinct values of the translatable fields (item,
// message, note) across all rows, in first-appearance order. Empty values and
// the placeholder are excluded.
func DistinctTexts(rows []Row) []string {
	seen := make(map[string]bool)
	var texts []string
	for _, row := range rows {
		for _, v := range []string{row.Item, row.Message, row.Note} {
			if v == "" || v == Placeholder || seen[v] {
				continue
			}
			seen[v] = true
			texts = append(texts, v)
		}
	}
	return texts
}
