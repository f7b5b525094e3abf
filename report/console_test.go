package report_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/report"
	"github.com/leakhound/leakhound/results"
	"github.com/leakhound/leakhound/scanners"
)

var _ = Describe("Console", func() {
	var (
		out     *bytes.Buffer
		console *report.Console
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		console = report.NewConsole(out)
	})

	Context("when every repository is clean", func() {
		It("prints one row per cell and a pass banner", func() {
			all := []results.ScanResult{
				{ScannerID: "trufflehog", RepoName: "gadgets", Kind: scanners.KindContainer, Status: scanners.StatusCompleted},
				{ScannerID: "gitleaks", RepoName: "gadgets", Kind: scanners.KindBinary, Status: scanners.StatusCompleted},
				{ScannerID: "patterns", RepoName: "gadgets", Kind: scanners.KindBuiltin, Status: scanners.StatusCompleted},
			}
			verdict := gate.Verdict{TotalRepositories: 1, Pass: true}

			Expect(console.Render(all, verdict)).To(Succeed())

			rendered := out.String()
			Expect(rendered).To(ContainSubstring("REPOSITORY"))
			Expect(rendered).To(ContainSubstring("trufflehog"))
			Expect(rendered).To(ContainSubstring("gitleaks"))
			Expect(rendered).To(ContainSubstring("patterns"))
			Expect(rendered).To(ContainSubstring("completed"))
			Expect(rendered).To(ContainSubstring("[PASS]"))
			Expect(rendered).To(ContainSubstring("all 1 repositories came back clean"))
			Expect(rendered).NotTo(ContainSubstring("Yikes"))
		})
	})

	Context("when a repository is flagged", func() {
		It("prints a fail banner, the flagged names, and the advice block", func() {
			all := []results.ScanResult{
				{ScannerID: "trufflehog", RepoName: "gadgets", Kind: scanners.KindContainer, Status: scanners.StatusCompleted, FindingCount: 1, HasVerifiedSecret: true},
				{ScannerID: "trufflehog", RepoName: "widgets", Kind: scanners.KindContainer, Status: scanners.StatusCompleted},
			}
			verdict := gate.Verdict{
				TotalRepositories:   2,
				FlaggedRepositories: []string{"gadgets"},
			}

			Expect(console.Render(all, verdict)).To(Succeed())

			rendered := out.String()
			Expect(rendered).To(ContainSubstring("1 (verified)"))
			Expect(rendered).To(ContainSubstring("[FAIL]"))
			Expect(rendered).To(ContainSubstring("1 of 2 repositories flagged: gadgets"))
			Expect(rendered).To(ContainSubstring("Yikes! Looks like we found leaked credentials."))
			Expect(rendered).To(ContainSubstring("'fake' and/or 'example'"))
		})
	})

	Context("when scanners were skipped", func() {
		It("warns about the skipped cells", func() {
			all := []results.ScanResult{
				{ScannerID: "trufflehog", RepoName: "gadgets", Kind: scanners.KindContainer, Status: scanners.StatusSkipped},
				{ScannerID: "gitleaks", RepoName: "gadgets", Kind: scanners.KindBinary, Status: scanners.StatusSkipped},
				{ScannerID: "patterns", RepoName: "gadgets", Kind: scanners.KindBuiltin, Status: scanners.StatusCompleted},
			}
			verdict := gate.Verdict{TotalRepositories: 1, Pass: true}

			Expect(console.Render(all, verdict)).To(Succeed())

			rendered := out.String()
			Expect(rendered).To(ContainSubstring("[WARN]"))
			Expect(rendered).To(ContainSubstring("2 scans skipped"))
			Expect(rendered).To(ContainSubstring("skipped"))
			Expect(rendered).To(ContainSubstring("[PASS]"))
		})
	})
})
