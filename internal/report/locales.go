// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Locale describes one artifact target: its code, the Markdown document
// strings, and whether a Markdown artifact is produced alongside the JSON.
type Locale struct {
	// Code is the locale identifier used in artifact filenames and sent to
	// the translation backend. Codes are opaque; no normalization happens.
	Code string `yaml:"code"`

	// Name is the human-readable language name.
	Name string `yaml:"name"`

	// Title is the Markdown level-1 heading.
	Title string `yaml:"title"`

	// Headers are the Markdown table column labels, in column order.
	Headers []string `yaml:"headers"`

	// Footer is the label prefixed to the generation timestamp.
	Footer string `yaml:"footer"`

	// Markdown enables the Markdown artifact for this locale.
	Markdown bool `yaml:"markdown"`
}

// DefaultLocales returns the built-in locale table. The ledger's native
// locale is zh-CN; Markdown artifacts are produced for zh-CN, zh-TW, and en.
func DefaultLocales() []Locale {
	return []Locale{
		{
			Code: "en", Name: "English", Title: "Supporters List",
			Headers:  []string{"Time", "Item", "Amount", "Name", "Message", "Note"},
			Footer:   "Last updated: ",
			Markdown: true,
		},
		{
			Code: "zh-CN", Name: "简体中文", Title: "支持者名单",
			Headers:  []string{"收款时间", "收款项", "金额", "昵称", "留言", "备注"},
			Footer:   "最后更新于：",
			Markdown: true,
		},
		{
			Code: "zh-TW", Name: "繁體中文", Title: "支持者名單",
			Headers:  []string{"收款時間", "收款項", "金額", "昵稱", "留言", "備註"},
			Footer:   "最後更新於：",
			Markdown: true,
		},
		{
			Code: "ja", Name: "日本語", Title: "サポーターリスト",
			Headers: []string{"受領時間", "項目", "金額", "名前", "メッセージ", "備考"},
			Footer:  "最終更新：",
		},
		{
			Code: "ko", Name: "한국어", Title: "후원자 명단",
			Headers: []string{"시간", "항목", "금액", "이름", "메시지", "비고"},
			Footer:  "마지막 업데이트：",
		},
	}
}

// LoadLocales reads a locale table from a YAML file, replacing the built-in
// table entirely.
func LoadLocales(path string) ([]Locale, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locale file: %w", err)
	}
	var locales []Locale
	if err := yaml.Unmarshal(data, &locales); err != nil {
		return nil, fmt.Errorf("parsing locale file: %w", err)
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("locale file %s defines no locales", path)
	}
	for _, loc := range locales {
		if loc.Code == "" {
			return nil, fmt.Errorf("locale file %s contains an entry without a code", path)
		}
	}
	return locales, nil
}

// Filter returns the locales whose codes appear in codes, preserving table
// order. An unknown code is an error so typos do not silently drop artifacts.
func Filter(locales []Locale, codes []string) ([]Locale, error) {
	if len(codes) == 0 {
		return locales, nil
	}

	wanted := make(map[string]bool, len(codes))
	for _, c := range codes {
		wanted[strings.TrimSpace(c)] = true
	}

	var out []Locale
	for _, loc := range locales {
		if wanted[loc.Code] {
			out = append(out, loc)
			delete(wanted, loc.Code)
		}
	}
	if len(wanted) > 0 {
		var missing []string
		for c := range wanted {
			missing = append(missing, c)
		}
		sort.Strings(missing)
		return nil, fmt.Errorf("unknown locale(s): %s", strings.Join(missing, ", "))
	}
	return out, nil
}
