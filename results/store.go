package results

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
)

type cellKey struct {
	scannerID string
	repoName  string
}

// Store keeps one result per (scanner, repository) cell and mirrors each to
// disk: <scannerID>_<repoName>.txt for raw output, plus .json when the
// scanner produced a structured report. Enumeration order is insertion
// order; re-putting a key overwrites in place.
type Store struct {
	dir string

	mu    sync.Mutex
	order []cellKey
	cells map[cellKey]ScanResult
}

func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cells: map[cellKey]ScanResult{},
	}
}

func (s *Store) Put(result ScanResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("results store: %s", err)
	}

	base := filepath.Join(s.dir, result.ScannerID+"_"+result.RepoName)

	if err := ioutil.WriteFile(base+".txt", result.Output, 0644); err != nil {
		return fmt.Errorf("results store: %s", err)
	}

	if len(result.Report) > 0 {
		if err := ioutil.WriteFile(base+".json", result.Report, 0644); err != nil {
			return fmt.Errorf("results store: %s", err)
		}
	}

	key := cellKey{scannerID: result.ScannerID, repoName: result.RepoName}
	if _, seen := s.cells[key]; !seen {
		s.order = append(s.order, key)
	}
	s.cells[key] = result

	return nil
}

func (s *Store) GetAll() []ScanResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]ScanResult, 0, len(s.order))
	for _, key := range s.order {
		all = append(all, s.cells[key])
	}

	return all
}

func (s *Store) GetByRepo(name string) []ScanResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []ScanResult
	for _, key := range s.order {
		if key.repoName == name {
			matched = append(matched, s.cells[key])
		}
	}

	return matched
}

// Artifacts lists the files this store has written, in insertion order, for
// the run summary.
func (s *Store) Artifacts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var paths []string
	for _, key := range s.order {
		base := filepath.Join(s.dir, key.scannerID+"_"+key.repoName)
		paths = append(paths, base+".txt")
		if len(s.cells[key].Report) > 0 {
			paths = append(paths, base+".json")
		}
	}

	return paths
}
