package repos

import "strings"

// Repository identifies one configured repository for the length of a run.
// Name doubles as the result-store key, which is why list parsing enforces
// its uniqueness.
type Repository struct {
	URL  string
	Name string
}

// NameFromURL derives the repository name from the final path segment of a
// clone URL, with any version-control suffix stripped. It understands both
// URL-style (https://host/org/repo.git) and scp-style (git@host:org/repo.git)
// identifiers.
func NameFromURL(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")

	segment := trimmed
	if i := strings.LastIndexAny(segment, "/:"); i >= 0 {
		segment = segment[i+1:]
	}

	return strings.TrimSuffix(segment, ".git")
}
