package github

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	cases := []struct {
		in    string
		owner string
		repo  string
		ok    bool
	}{
		{"https://github.com/octocat/hello", "octocat", "hello", true},
		{"http://github.com/octocat/hello", "octocat", "hello", true},
		{"  https://github.com/octocat/hello  ", "octocat", "hello", true},
		{"https://github.com/octocat/hello/tree/main", "octocat", "hello", true},
		{"https://github.com/octocat/hello?tab=readme", "octocat", "hello", true},
		{"https://gitlab.com/octocat/hello", "", "", false},
		{"github.com/octocat/hello", "", "", false},
		{"not a url", "", "", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		ref, err := ParseRepoURL(tc.in)
		if tc.ok {
			require.NoError(t, err, tc.in)
			assert.Equal(t, tc.owner, ref.Owner, tc.in)
			assert.Equal(t, tc.repo, ref.Repo, tc.in)
		} else {
			assert.ErrorIs(t, err, ErrBadURL, tc.in)
		}
	}
}

func TestMeta_ResolvesDefaultBranch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/hello", r.URL.Path)
		require.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"full_name":"octocat/hello","default_branch":"main","stargazers_count":7}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "", time.Second)
	meta, err := c.Meta(context.Background(), Ref{Owner: "octocat", Repo: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "main", meta.DefaultBranch)
	assert.Equal(t, 7, meta.Stargazers)
}

func TestMeta_StatusMapping(t *testing.T) {
	for status, wantErr := range map[int]error{
		http.StatusNotFound:  ErrNotFound,
		http.StatusForbidden: ErrRateLimited,
	} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		c := NewClient(srv.URL, "", "", time.Second)
		_, err := c.Meta(context.Background(), Ref{Owner: "o", Repo: "r"})
		assert.ErrorIs(t, err, wantErr)
		srv.Close()
	}
}

func TestMeta_SendsTokenWhenConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"default_branch":"main"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "secret", time.Second)
	_, err := c.Meta(context.Background(), Ref{Owner: "o", Repo: "r"})
	require.NoError(t, err)
}

func TestLatestSHA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/o/r/commits/main", r.URL.Path)
		_, _ = w.Write([]byte(`{"sha":"abc123"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "", time.Second)
	sha, err := c.LatestSHA(context.Background(), Ref{Owner: "o", Repo: "r"}, "main")
	require.NoError(t, err)
	assert.Equal(t, "abc123", sha)
}

func TestLatestSHA_ConflictMapsToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict) // empty repository
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "", time.Second)
	_, err := c.LatestSHA(context.Background(), Ref{Owner: "o", Repo: "r"}, "main")
	assert.ErrorIs(t, err, ErrNotFound)
}

// buildZip assembles an in-memory archive with the given top-level dir.
func buildZip(t *testing.T, topDir string, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := zw.Create(topDir + "/" + name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDownloadArchive_ExtractsTopLevelDir(t *testing.T) {
	archive := buildZip(t, "hello-main", map[string]string{
		"README.md": "# hello",
		"LICENSE":   "MIT",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/o/r/zip/refs/heads/main", r.URL.Path)
		_, _ = w.Write(archive)
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "", time.Second)
	root, cleanup, err := c.DownloadArchive(context.Background(), Ref{Owner: "o", Repo: "r"}, "main")
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "hello-main", filepath.Base(root))
	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# hello", string(data))

	cleanup()
	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err), "cleanup should remove the temp tree")
}

func TestDownloadArchive_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "", time.Second)
	_, _, err := c.DownloadArchive(context.Background(), Ref{Owner: "o", Repo: "r"}, "main")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDownloadArchive_EmptyArchive(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	require.NoError(t, zw.Close())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	c := NewClient("", srv.URL, "", time.Second)
	_, _, err := c.DownloadArchive(context.Background(), Ref{Owner: "o", Repo: "r"}, "main")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
