package repos

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
)

// ErrNoRepositories is the misconfiguration sentinel: the run must abort
// before any scanning and exit non-zero.
var ErrNoRepositories = errors.New("no repositories configured")

const listTemplate = `# leakhound repository list
#
# One clone URL per line. Blank lines and lines starting with '#' are
# ignored. The final path segment of each URL (minus any .git suffix)
# becomes the repository's name and must be unique within this file.
#
# https://github.com/example-org/example-repo.git
`

// ParseList reads an ordered repository list, skipping blank lines and '#'
// comments. Duplicate URLs collapse to their first occurrence. Two distinct
// URLs that derive the same name are a configuration error: the name is the
// storage key and silently overwriting results would hide a repository from
// the verdict.
func ParseList(r io.Reader) ([]Repository, error) {
	var repositories []Repository
	seenURLs := map[string]struct{}{}
	seenNames := map[string]string{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if _, dup := seenURLs[line]; dup {
			continue
		}
		seenURLs[line] = struct{}{}

		name := NameFromURL(line)
		if name == "" {
			return nil, fmt.Errorf("cannot derive a repository name from %q", line)
		}
		if otherURL, taken := seenNames[name]; taken {
			return nil, fmt.Errorf("repository name %q derived from both %q and %q; names must be unique", name, otherURL, line)
		}
		seenNames[name] = line

		repositories = append(repositories, Repository{URL: line, Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return repositories, nil
}

// LoadList parses the repository list at path. A missing file is populated
// with a commented template so the next run has something to edit, and the
// current run still fails with ErrNoRepositories rather than silently
// scanning nothing.
func LoadList(path string) ([]Repository, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		if writeErr := ioutil.WriteFile(path, []byte(listTemplate), 0644); writeErr != nil {
			return nil, writeErr
		}
		return nil, ErrNoRepositories
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	repositories, err := ParseList(file)
	if err != nil {
		return nil, err
	}
	if len(repositories) == 0 {
		return nil, ErrNoRepositories
	}

	return repositories, nil
}
