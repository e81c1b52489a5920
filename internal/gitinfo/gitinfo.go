// Package gitinfo resolves commit identity for local work trees so local
// scans can report the same (branch, sha) identity remote scans use.
package gitinfo

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// IsRepo reports whether path is (inside) a git work tree.
func IsRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// Head returns the checked-out branch name and commit sha of the work tree
// at path.
func Head(path string) (branch, sha string, err error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", "", fmt.Errorf("reading HEAD: %w", err)
	}

	return head.Name().Short(), head.Hash().String(), nil
}
