package results

import (
	"github.com/leakhound/leakhound/scanners"
)

// ScanResult is the normalized record of one (scanner, repository) cell.
// Immutable once created; a re-run of the same cell replaces the record by
// key rather than mutating it.
type ScanResult struct {
	ScannerID string
	RepoName  string
	Kind      scanners.Kind
	Status    scanners.Status

	Output []byte
	Report []byte

	FindingCount         int
	HasVerifiedSecret    bool
	HasUnverifiedFinding bool
}
