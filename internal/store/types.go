// Package store provides the SQLite-backed scan cache keyed by
// (owner, repo, sha).
package store

import "github.com/readmelens/readmelens/internal/scanner"

// ScanRow is one cached scan. (owner, repo, sha) is unique: re-scanning the
// same commit replaces the prior row wholesale.
type ScanRow struct {
	ID        int64           `json:"id"`
	Owner     string          `json:"owner"`
	Repo      string          `json:"repo"`
	Branch    string          `json:"branch"`
	SHA       string          `json:"sha"`
	ScannedAt int64           `json:"scanned_at"`
	Result    *scanner.Result `json:"result"`
}

// RecentScan is the summary row returned by ListRecent.
type RecentScan struct {
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	Branch    string `json:"branch"`
	SHA       string `json:"sha"`
	ScannedAt int64  `json:"scanned_at"`
}
