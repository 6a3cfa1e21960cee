// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SupportRecord is one ledger entry as it appears in a generated JSON
// artifact. Field keys are the canonical English identifiers regardless of
// the artifact locale; only the item, message, and note values are localized.
type SupportRecord struct {
	Time    string `json:"time" yaml:"time"`
	Item    string `json:"item" yaml:"item"`
	Amount  string `json:"amount" yaml:"amount"`
	Unit    string `json:"unit" yaml:"unit"`
	Message string `json:"message" yaml:"message"`
	Name    string `json:"name" yaml:"name"`
	Note    string `json:"note" yaml:"note"`
}
