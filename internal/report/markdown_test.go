// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/support-ledger/internal/ledger"
)

func TestRenderMarkdown(t *testing.T) {
	loc := Locale{
		Code: "en", Title: "Supporters List",
		Headers: []string{"Time", "Item", "Amount", "Name", "Message", "Note"},
		Footer:  "Last updated: ",
	}
	rows := []ledger.Row{
		{Time: "2024-01-01", Item: "Coffee", Amount: "5", Unit: "$", Message: "Thanks!", Name: "Alice", Note: "-"},
		{Time: "2024-01-02", Item: "Pizza", Amount: "20", Unit: "¥", Message: "", Name: "Bob", Note: "Keep going"},
	}
	tmap := map[string]string{"Coffee": "Kaffee", "Thanks!": "Danke!"}
	now := time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)

	md := RenderMarkdown(loc, rows, tmap, now)
	lines := strings.Split(md, "\n")

	if lines[0] != "# Supporters List" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[2] != "| Time | Item | Amount | Name | Message | Note |" {
		t.Errorf("header line = %q", lines[2])
	}
	if lines[3] != "| :--- | :--- | :--- | :--- | :--- | :--- |" {
		t.Errorf("separator line = %q", lines[3])
	}
	if lines[4] != "| 2024-01-01 | Kaffee | **$5** | Alice | Danke! | - |" {
		t.Errorf("data line = %q", lines[4])
	}
	// Empty message renders as the placeholder.
	if lines[5] != "| 2024-01-02 | Pizza | **¥20** | Bob | - | Keep going |" {
		t.Errorf("data line = %q", lines[5])
	}

	if !strings.HasSuffix(md, "*Last updated: 2024-06-01 12:30:45*") {
		t.Errorf("footer = %q", md[strings.LastIndex(md, "\n")+1:])
	}
}

func TestRenderMarkdownRowCountMatchesInput(t *testing.T) {
	loc := DefaultLocales()[0]
	rows := make([]ledger.Row, 7)
	for i := range rows {
		rows[i] = ledger.Row{Time: "2024-01-01", Item: "x", Amount: "1", Unit: "$", Name: "n"}
	}

	md := RenderMarkdown(loc, rows, nil, time.Now())

	dataLines := 0
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "| 2024-01-01 |") {
			dataLines++
		}
	}
	if dataLines != len(rows) {
		t.Errorf("data rows = %d, want %d", dataLines, len(rows))
	}
}
