package github

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DownloadArchive fetches the zip archive of the branch head from codeload
// (no auth needed for public repos), extracts it into a fresh temp
// directory, and returns the extracted repository root. Archives contain a
// single "{repo}-{ref}/" top-level directory. The cleanup func removes the
// whole temp tree; callers must invoke it once done with the extracted root.
func (c *Client) DownloadArchive(ctx context.Context, ref Ref, branch string) (string, func(), error) {
	archiveURL := fmt.Sprintf("%s/%s/%s/zip/refs/heads/%s",
		c.codeloadBase, ref.Owner, ref.Repo, url.PathEscape(branch))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return "", nil, fmt.Errorf("downloading %s archive: %w", branch, ErrNotFound)
	case http.StatusForbidden:
		return "", nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("archive download: unexpected status %d", resp.StatusCode)
	}

	tmpDir, err := os.MkdirTemp("", "readmelens-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	zipPath := filepath.Join(tmpDir, "repo.zip")
	if err := writeBody(zipPath, resp.Body); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("saving archive: %w", err)
	}

	srcDir := filepath.Join(tmpDir, "src")
	if err := extractZip(zipPath, srcDir); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("extracting archive: %w", err)
	}

	root, err := soleSubdir(srcDir)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	return root, cleanup, nil
}

func writeBody(path string, body io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// extractZip unpacks the archive under dest, rejecting entries that would
// escape it.
func extractZip(zipPath, dest string) error {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, entry := range zr.File {
		target := filepath.Join(dest, filepath.Clean(entry.Name))
		if !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry escapes destination: %s", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := extractEntry(entry, target); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(entry *zip.File, target string) error {
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, entry.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

// soleSubdir returns the single top-level directory of an extracted
// archive.
func soleSubdir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.IsDir() {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", fmt.Errorf("downloaded archive was empty")
}
