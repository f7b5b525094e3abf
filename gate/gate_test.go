package gate_test

import (
	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/results"
	"github.com/leakhound/leakhound/scanners"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Evaluate", func() {
	cleanCell := func(scannerID, repoName string, kind scanners.Kind) results.ScanResult {
		return results.ScanResult{
			ScannerID: scannerID,
			RepoName:  repoName,
			Kind:      kind,
			Status:    scanners.StatusCompleted,
		}
	}

	It("passes a clean result set", func() {
		verdict := gate.Evaluate([]results.ScanResult{
			cleanCell("trufflehog", "widgets", scanners.KindContainer),
			cleanCell("gitleaks", "widgets", scanners.KindBinary),
			cleanCell("patterns", "widgets", scanners.KindBuiltin),
		})

		Expect(verdict.Pass).To(BeTrue())
		Expect(verdict.TotalRepositories).To(Equal(1))
		Expect(verdict.FlaggedRepositories).To(BeEmpty())
	})

	It("passes an all-skipped run", func() {
		skipped := results.ScanResult{
			ScannerID: "trufflehog",
			RepoName:  "widgets",
			Kind:      scanners.KindContainer,
			Status:    scanners.StatusSkipped,
		}

		verdict := gate.Evaluate([]results.ScanResult{skipped})

		Expect(verdict.Pass).To(BeTrue())
	})

	It("flags a repository on a verified secret", func() {
		verified := cleanCell("trufflehog", "widgets", scanners.KindContainer)
		verified.FindingCount = 1
		verified.HasVerifiedSecret = true

		verdict := gate.Evaluate([]results.ScanResult{
			verified,
			cleanCell("patterns", "widgets", scanners.KindBuiltin),
		})

		Expect(verdict.Pass).To(BeFalse())
		Expect(verdict.FlaggedRepositories).To(Equal([]string{"widgets"}))
	})

	It("flags a repository on tool-reported unverified findings", func() {
		unverified := cleanCell("gitleaks", "widgets", scanners.KindBinary)
		unverified.FindingCount = 2
		unverified.HasUnverifiedFinding = true

		verdict := gate.Evaluate([]results.ScanResult{unverified})

		Expect(verdict.Pass).To(BeFalse())
		Expect(verdict.FlaggedRepositories).To(Equal([]string{"widgets"}))
	})

	It("treats builtin pattern hits as advisory only", func() {
		advisory := cleanCell("patterns", "widgets", scanners.KindBuiltin)
		advisory.FindingCount = 5

		verdict := gate.Evaluate([]results.ScanResult{advisory})

		Expect(verdict.Pass).To(BeTrue())
		Expect(verdict.FlaggedRepositories).To(BeEmpty())
	})

	It("needs both findings and the unverified marker from a tool", func() {
		countOnly := cleanCell("gitleaks", "widgets", scanners.KindBinary)
		countOnly.FindingCount = 1

		markerOnly := cleanCell("trufflehog", "gadgets", scanners.KindContainer)
		markerOnly.Status = scanners.StatusFailed
		markerOnly.HasUnverifiedFinding = true

		verdict := gate.Evaluate([]results.ScanResult{countOnly, markerOnly})

		Expect(verdict.Pass).To(BeTrue())
	})

	It("trusts a verified secret even from a failed cell", func() {
		partial := cleanCell("trufflehog", "widgets", scanners.KindContainer)
		partial.Status = scanners.StatusFailed
		partial.HasVerifiedSecret = true

		verdict := gate.Evaluate([]results.ScanResult{partial})

		Expect(verdict.Pass).To(BeFalse())
	})

	It("is monotonic: adding a verified result can only fail a passing set", func() {
		clean := []results.ScanResult{
			cleanCell("trufflehog", "widgets", scanners.KindContainer),
			cleanCell("patterns", "widgets", scanners.KindBuiltin),
		}
		Expect(gate.Evaluate(clean).Pass).To(BeTrue())

		verified := cleanCell("trufflehog", "gadgets", scanners.KindContainer)
		verified.HasVerifiedSecret = true

		verdict := gate.Evaluate(append(clean, verified))

		Expect(verdict.Pass).To(BeFalse())
		Expect(verdict.TotalRepositories).To(Equal(2))
		Expect(verdict.FlaggedRepositories).To(Equal([]string{"gadgets"}))
	})

	It("reports flagged repositories sorted and de-duplicated", func() {
		flag := func(repo string) results.ScanResult {
			cell := cleanCell("trufflehog", repo, scanners.KindContainer)
			cell.HasVerifiedSecret = true
			return cell
		}
		second := flag("widgets")
		second.ScannerID = "gitleaks"
		second.Kind = scanners.KindBinary

		verdict := gate.Evaluate([]results.ScanResult{
			flag("widgets"),
			flag("anvils"),
			second,
		})

		Expect(verdict.FlaggedRepositories).To(Equal([]string{"anvils", "widgets"}))
		Expect(verdict.TotalRepositories).To(Equal(2))
	})

	It("renders the same verdict for the same input", func() {
		set := []results.ScanResult{
			cleanCell("trufflehog", "widgets", scanners.KindContainer),
			cleanCell("gitleaks", "gadgets", scanners.KindBinary),
		}

		Expect(gate.Evaluate(set)).To(Equal(gate.Evaluate(set)))
	})
})
