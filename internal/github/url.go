package github

import (
	"errors"
	"regexp"
	"strings"
)

// ErrBadURL is returned when the input does not look like a GitHub
// repository URL.
var ErrBadURL = errors.New("expected a URL like https://github.com/owner/repo")

var repoURLPattern = regexp.MustCompile(`^https?://github\.com/([^/]+)/([^/#?]+)`)

// Ref identifies a repository on the hosting platform. Case is preserved
// as given: the platform, not this package, owns case sensitivity.
type Ref struct {
	Owner string
	Repo  string
}

func (r Ref) String() string {
	return r.Owner + "/" + r.Repo
}

// ParseRepoURL extracts the (owner, repo) identity from a repository URL.
func ParseRepoURL(raw string) (Ref, error) {
	m := repoURLPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Ref{}, ErrBadURL
	}
	return Ref{Owner: m[1], Repo: m[2]}, nil
}
