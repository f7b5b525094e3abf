package results

import (
	"bytes"
	"encoding/json"

	"github.com/zricethezav/gitleaks/v8/report"

	"github.com/leakhound/leakhound/repos"
	"github.com/leakhound/leakhound/scanners"
	"github.com/leakhound/leakhound/sniff"
)

// Marker lines trufflehog prints per finding. Verified means the tool
// confirmed the credential against a live API, not just shape-matched it.
const (
	VerifiedResultMarker   = "Found verified result"
	UnverifiedResultMarker = "Found unverified result"
)

// Normalize converts one raw outcome into a ScanResult. It is a pure
// function: the same inputs always produce the same record, and malformed
// tool output degrades to text heuristics instead of erroring.
func Normalize(desc scanners.Descriptor, repo repos.Repository, outcome scanners.Outcome) ScanResult {
	result := ScanResult{
		ScannerID: desc.ID,
		RepoName:  repo.Name,
		Kind:      desc.Kind,
		Status:    outcome.Status,
		Output:    outcome.Output,
		Report:    outcome.Report,
	}

	if outcome.Status == scanners.StatusSkipped {
		return result
	}

	switch desc.ID {
	case scanners.TruffleHogID:
		normalizeTruffleHog(&result)
	case scanners.GitleaksID:
		normalizeGitleaks(&result)
	case scanners.PatternsID:
		normalizePatterns(&result)
	default:
		normalizeGeneric(&result)
	}

	return result
}

func normalizeTruffleHog(result *ScanResult) {
	verified := bytes.Count(result.Output, []byte(VerifiedResultMarker))
	unverified := bytes.Count(result.Output, []byte(UnverifiedResultMarker))

	result.HasVerifiedSecret = verified > 0
	result.HasUnverifiedFinding = unverified > 0

	if result.Status == scanners.StatusCompleted {
		result.FindingCount = verified + unverified
	}
}

func normalizeGitleaks(result *ScanResult) {
	findings, err := parseGitleaksReport(result.Report)
	if err != nil {
		// No usable report. Fall back to the raw transcript heuristic.
		if result.Status == scanners.StatusCompleted && len(result.Output) > 0 {
			result.FindingCount = 1
		}
		return
	}

	result.HasUnverifiedFinding = len(findings) > 0
	if result.Status == scanners.StatusCompleted {
		result.FindingCount = len(findings)
	}
}

// Pattern sweeps are advisory: they count toward the summary but never set
// the flags the gate fires on.
func normalizePatterns(result *ScanResult) {
	if result.Status != scanners.StatusCompleted {
		return
	}

	result.FindingCount = sniff.CountFlaggedSections(sniff.ParseReport(result.Output))
}

func normalizeGeneric(result *ScanResult) {
	result.HasVerifiedSecret = bytes.Contains(result.Output, []byte(VerifiedResultMarker))
	result.HasUnverifiedFinding = bytes.Contains(result.Output, []byte(UnverifiedResultMarker))

	if result.Status == scanners.StatusCompleted && len(result.Output) > 0 {
		result.FindingCount = 1
	}
}

func parseGitleaksReport(data []byte) ([]report.Finding, error) {
	var findings []report.Finding
	if err := json.Unmarshal(data, &findings); err != nil {
		return nil, err
	}

	return findings, nil
}
