package app

import (
	"net/url"
	"path"
	"strings"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
)

// DefaultRepoName is used when no name can be derived from the input
const DefaultRepoName = "repository"

// ClassifyInput determines whether the input is a remote URL to clone or a
// local directory
func ClassifyInput(raw string) domain.InputSpec {
	raw = strings.TrimSpace(raw)

	// scp-like syntax, e.g. git@github.com:owner/repo.git
	if strings.HasPrefix(raw, "git@") && strings.Contains(raw, ":") {
		return domain.InputSpec{Kind: domain.InputRemote, Raw: raw}
	}

	u, err := url.Parse(raw)
	// single letter schemes are Windows drive letters
	if err == nil && len(u.Scheme) > 1 {
		return domain.InputSpec{Kind: domain.InputRemote, Raw: raw}
	}

	return domain.InputSpec{Kind: domain.InputLocal, Raw: raw}
}

// RepoNameFromURL returns the last path segment of a repository URL without
// a trailing slash or .git suffix
func RepoNameFromURL(raw string) string {
	p := strings.TrimSpace(raw)
	if u, err := url.Parse(p); err == nil && u.Scheme != "" {
		p = u.Path
	} else if i := strings.LastIndex(p, ":"); i >= 0 {
		p = p[i+1:]
	}

	p = strings.TrimRight(p, "/")
	name := strings.TrimSuffix(path.Base(p), ".git")
	if name == "" || name == "." || name == "/" {
		return DefaultRepoName
	}
	return name
}
