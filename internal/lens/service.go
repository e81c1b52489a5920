// Package lens orchestrates the scan flow: repository identity, remote
// metadata, cache lookup, archive download, scanning, and persistence.
package lens

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/readmelens/readmelens/internal/github"
	"github.com/readmelens/readmelens/internal/gitinfo"
	"github.com/readmelens/readmelens/internal/onboarding"
	"github.com/readmelens/readmelens/internal/scanner"
	"github.com/readmelens/readmelens/internal/store"
)

// ErrNotCached is returned when an onboarding doc is requested for a
// repository that has never been scanned.
var ErrNotCached = errors.New("no cached scan for that repository")

// Service wires the GitHub client and the scan cache behind the scan and
// onboarding operations. Safe for concurrent use: the scanner is pure and
// the cache upsert tolerates duplicate writes for the same commit (same
// input commit always yields the same result, so the last writer wins).
type Service struct {
	github *github.Client
	db     *store.DB
}

// NewService creates the orchestration service.
func NewService(gh *github.Client, db *store.DB) *Service {
	return &Service{github: gh, db: db}
}

// Report is the outcome of one scan request.
type Report struct {
	Owner     string          `json:"owner"`
	Repo      string          `json:"repo"`
	Branch    string          `json:"branch,omitempty"`
	SHA       string          `json:"sha,omitempty"`
	ScannedAt int64           `json:"scanned_at"`
	Cached    bool            `json:"cached"`
	Result    *scanner.Result `json:"result"`
}

// ScanRepo runs the full remote flow for a repository URL: parse identity,
// resolve default branch and head commit, return the cached result when the
// commit was scanned before, otherwise download the archive, scan it, and
// persist the fresh result.
func (s *Service) ScanRepo(ctx context.Context, rawURL string) (*Report, error) {
	ref, err := github.ParseRepoURL(rawURL)
	if err != nil {
		return nil, err
	}

	meta, err := s.github.Meta(ctx, ref)
	if err != nil {
		return nil, err
	}
	sha, err := s.github.LatestSHA(ctx, ref, meta.DefaultBranch)
	if err != nil {
		return nil, err
	}

	cached, err := s.db.GetCached(ref.Owner, ref.Repo, sha)
	if err != nil {
		return nil, fmt.Errorf("reading scan cache: %w", err)
	}
	if cached != nil {
		return &Report{
			Owner: cached.Owner, Repo: cached.Repo, Branch: cached.Branch,
			SHA: cached.SHA, ScannedAt: cached.ScannedAt,
			Cached: true, Result: cached.Result,
		}, nil
	}

	root, cleanup, err := s.github.DownloadArchive(ctx, ref, meta.DefaultBranch)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result := scanner.Scan(root)
	row := &store.ScanRow{
		Owner:     ref.Owner,
		Repo:      ref.Repo,
		Branch:    meta.DefaultBranch,
		SHA:       sha,
		ScannedAt: time.Now().Unix(),
		Result:    result,
	}
	if err := s.db.SaveScan(row); err != nil {
		return nil, fmt.Errorf("saving scan: %w", err)
	}

	return &Report{
		Owner: row.Owner, Repo: row.Repo, Branch: row.Branch,
		SHA: row.SHA, ScannedAt: row.ScannedAt,
		Cached: false, Result: result,
	}, nil
}

// ScanLocal scans a directory on disk without touching the cache. When the
// directory is a git work tree, the report carries its HEAD branch and sha
// so output lines up with remote scans.
func ScanLocal(path string) *Report {
	report := &Report{
		Repo:      filepath.Base(path),
		ScannedAt: time.Now().Unix(),
		Result:    scanner.Scan(path),
	}
	if gitinfo.IsRepo(path) {
		if branch, sha, err := gitinfo.Head(path); err == nil {
			report.Branch = branch
			report.SHA = sha
		}
	}
	return report
}

// Onboarding renders the onboarding doc for a cached scan. With an empty
// sha the most recent scan of (owner, repo) is used; otherwise the lookup
// is exact-key. An unknown key is ErrNotCached, never a crash.
func (s *Service) Onboarding(owner, repo, sha string) (string, error) {
	var (
		row *store.ScanRow
		err error
	)
	if sha == "" {
		row, err = s.db.GetLatest(owner, repo)
	} else {
		row, err = s.db.GetCached(owner, repo, sha)
	}
	if err != nil {
		return "", fmt.Errorf("reading scan cache: %w", err)
	}
	if row == nil {
		return "", ErrNotCached
	}
	return onboarding.Render(owner, repo, row.Result)
}

// Recent returns summaries of the most recent cached scans.
func (s *Service) Recent(limit int) ([]store.RecentScan, error) {
	return s.db.ListRecent(limit)
}
