// Package github is the client for the repository-hosting API: metadata
// lookup, commit resolution, and default-branch archive retrieval.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors surfaced to callers for user-facing status mapping.
var (
	ErrNotFound    = errors.New("repo not found (or not public)")
	ErrRateLimited = errors.New("github rate-limited this client, try later")
)

const defaultTimeout = 30 * time.Second

// Client talks to the GitHub REST API and the codeload archive host.
// The zero value is not usable; construct with NewClient.
type Client struct {
	apiBase      string
	codeloadBase string
	token        string
	httpClient   *http.Client
}

// NewClient creates a GitHub client. Empty apiBase/codeloadBase fall back
// to the public endpoints; token is optional and only raises rate limits.
func NewClient(apiBase, codeloadBase, token string, timeout time.Duration) *Client {
	if apiBase == "" {
		apiBase = "https://api.github.com"
	}
	if codeloadBase == "" {
		codeloadBase = "https://codeload.github.com"
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiBase:      apiBase,
		codeloadBase: codeloadBase,
		token:        token,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// RepoMeta is the subset of repository metadata the scanner flow needs.
type RepoMeta struct {
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	Stargazers    int    `json:"stargazers_count"`
}

// Meta fetches repository metadata, most importantly the default branch.
func (c *Client) Meta(ctx context.Context, ref Ref) (*RepoMeta, error) {
	url := fmt.Sprintf("%s/repos/%s/%s", c.apiBase, ref.Owner, ref.Repo)
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusForbidden:
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api: unexpected status %d for %s", resp.StatusCode, ref)
	}

	var meta RepoMeta
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decoding repo metadata: %w", err)
	}
	return &meta, nil
}

// LatestSHA resolves the branch head to a commit sha.
func (c *Client) LatestSHA(ctx context.Context, ref Ref, branch string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/commits/%s", c.apiBase, ref.Owner, ref.Repo, branch)
	resp, err := c.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusConflict:
		return "", fmt.Errorf("resolving %s head for %s: %w", branch, ref, ErrNotFound)
	case http.StatusForbidden:
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github api: unexpected status %d resolving %s", resp.StatusCode, branch)
	}

	var commit struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&commit); err != nil {
		return "", fmt.Errorf("decoding commit: %w", err)
	}
	if commit.SHA == "" {
		return "", fmt.Errorf("resolving %s head for %s: empty sha", branch, ref)
	}
	return commit.SHA, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}
