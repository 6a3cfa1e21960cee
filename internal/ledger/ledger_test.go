// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Support.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadMapsColumnsByHeader(t *testing.T) {
	// Columns deliberately out of canonical order.
	path := writeCSV(t,
		"昵称,收款时间,收款项,金额,单位,留言,备注",
		"Alice,2024-01-01,咖啡,5,$,谢谢!,-",
		"Bob,2024-01-02,披萨,20,¥,,加油",
	)

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	want := Row{
		Time: "2024-01-01", Item: "咖啡", Amount: "5", Unit: "$",
		Message: "谢谢!", Name: "Alice", Note: "-",
	}
	if rows[0] != want {
		t.Errorf("rows[0] = %+v, want %+v", rows[0], want)
	}
	if rows[1].Message != "" || rows[1].Note != "加油" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestLoadPreservesRowOrder(t *testing.T) {
	path := writeCSV(t,
		"收款时间,收款项,金额,单位,留言,昵称,备注",
		"2024-01-03,c,1,$,-,n3,-",
		"2024-01-01,a,1,$,-,n1,-",
		"2024-01-02,b,1,$,-,n2,-",
	)

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := []string{rows[0].Item, rows[1].Item, rows[2].Item}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("item order = %v, want %v", got, want)
		}
	}
}

func TestLoadMissingColumnYieldsEmpty(t *testing.T) {
	path := writeCSV(t,
		"收款时间,收款项,金额,单位,昵称",
		"2024-01-01,咖啡,5,$,Alice",
	)

	rows, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rows[0].Message != "" || rows[0].Note != "" {
		t.Errorf("missing columns should be empty, got %+v", rows[0])
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			"missing file",
			func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.csv") },
		},
		{
			"malformed quoting",
			func(t *testing.T) string {
				return writeCSV(t,
					"收款时间,收款项,金额,单位,留言,昵称,备注",
					`2024-01-01,"unterminated,5,$,-,Alice,-`,
				)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path(t)); err == nil {
				t.Fatal("Load should fail")
			}
		})
	}
}

func TestDistinctTexts(t *testing.T) {
	rows := []Row{
		{Item: "咖啡", Message: "谢谢!", Note: "-"},
		{Item: "咖啡", Message: "", Note: "加油"},
		{Item: "披萨", Message: "加油", Note: "-"},
	}

	got := DistinctTexts(rows)
	want := []string{"咖啡", "谢谢!", "加油", "披萨"}
	if len(got) != len(want) {
		t.Fatalf("DistinctTexts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DistinctTexts = %v, want %v", got, want)
		}
	}
}

func TestDistinctTextsEmptyLedger(t *testing.T) {
	if got := DistinctTexts(nil); len(got) != 0 {
		t.Errorf("DistinctTexts(nil) = %v, want empty", got)
	}
}
