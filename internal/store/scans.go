package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/readmelens/readmelens/internal/scanner"
)

// GetCached returns the cached scan for the exact (owner, repo, sha) key,
// or nil if no row exists. A miss is normal control flow, not an error.
func (db *DB) GetCached(owner, repo, sha string) (*ScanRow, error) {
	row := db.conn.QueryRow(
		`SELECT id, owner, repo, branch, sha, scanned_at, result_json
		 FROM scans WHERE owner = ? AND repo = ? AND sha = ?`,
		owner, repo, sha,
	)
	return scanRow(row)
}

// GetLatest returns the most recently scanned row for (owner, repo),
// or nil if the repository has never been scanned.
func (db *DB) GetLatest(owner, repo string) (*ScanRow, error) {
	row := db.conn.QueryRow(
		`SELECT id, owner, repo, branch, sha, scanned_at, result_json
		 FROM scans WHERE owner = ? AND repo = ?
		 ORDER BY scanned_at DESC, id DESC LIMIT 1`,
		owner, repo,
	)
	return scanRow(row)
}

// SaveScan upserts a scan by its (owner, repo, sha) key, replacing branch,
// scanned_at, and result wholesale. The write is committed before return.
func (db *DB) SaveScan(row *ScanRow) error {
	resultJSON, err := json.Marshal(row.Result)
	if err != nil {
		return fmt.Errorf("encoding scan result: %w", err)
	}

	_, err = db.conn.Exec(
		`INSERT INTO scans (owner, repo, branch, sha, scanned_at, result_json)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(owner, repo, sha) DO UPDATE SET
		   branch = excluded.branch,
		   scanned_at = excluded.scanned_at,
		   result_json = excluded.result_json`,
		row.Owner, row.Repo, row.Branch, row.SHA, row.ScannedAt, string(resultJSON),
	)
	return err
}

// ListRecent returns summaries of the most recent scans, newest first,
// truncated to limit. Ties in scanned_at fall back to newest insert first.
func (db *DB) ListRecent(limit int) ([]RecentScan, error) {
	rows, err := db.conn.Query(
		`SELECT owner, repo, branch, sha, scanned_at
		 FROM scans ORDER BY scanned_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []RecentScan
	for rows.Next() {
		var r RecentScan
		if err := rows.Scan(&r.Owner, &r.Repo, &r.Branch, &r.SHA, &r.ScannedAt); err != nil {
			return nil, err
		}
		recent = append(recent, r)
	}
	return recent, rows.Err()
}

func scanRow(row *sql.Row) (*ScanRow, error) {
	var r ScanRow
	var resultJSON string
	err := row.Scan(&r.ID, &r.Owner, &r.Repo, &r.Branch, &r.SHA, &r.ScannedAt, &resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var result scanner.Result
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("decoding scan result: %w", err)
	}
	r.Result = &result
	return &r, nil
}
