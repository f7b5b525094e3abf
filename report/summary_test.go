package report_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/report"
)

var _ = Describe("Summarizer", func() {
	var (
		logger     *lagertest.TestLogger
		dir        string
		summarizer *report.Summarizer

		verdict   gate.Verdict
		artifacts []string
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("summary")

		var err error
		dir, err = ioutil.TempDir("", "summary")
		Expect(err).NotTo(HaveOccurred())

		clk := fakeclock.NewFakeClock(time.Date(2026, 8, 21, 9, 30, 0, 0, time.UTC))
		summarizer = report.NewSummarizer(clk)

		transcript := filepath.Join(dir, "trufflehog_gadgets.txt")
		Expect(ioutil.WriteFile(transcript, []byte("Found verified result 🐷🔑\nDetector Type: AWS\n"), 0644)).To(Succeed())

		sideReport := filepath.Join(dir, "gitleaks_gadgets.json")
		Expect(ioutil.WriteFile(sideReport, []byte(`[{"RuleID":"aws-access-key"}]`), 0644)).To(Succeed())

		artifacts = []string{transcript, sideReport}
		verdict = gate.Verdict{
			TotalRepositories:   2,
			FlaggedRepositories: []string{"gadgets"},
		}
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("writes the run header and the verdict", func() {
		path, err := summarizer.Write(logger, dir, "0c7a4b52-run", verdict, artifacts)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "summary.txt")))

		content, err := ioutil.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		summary := string(content)
		Expect(summary).To(ContainSubstring("leakhound audit summary"))
		Expect(summary).To(ContainSubstring("run:          0c7a4b52-run"))
		Expect(summary).To(ContainSubstring("generated:    2026-08-21T09:30:00Z"))
		Expect(summary).To(ContainSubstring("repositories: 2"))
		Expect(summary).To(ContainSubstring("verdict:      FAIL"))
		Expect(summary).To(ContainSubstring("flagged:      gadgets"))
	})

	It("lists each artifact with its size and first line", func() {
		path, err := summarizer.Write(logger, dir, "run", verdict, artifacts)
		Expect(err).NotTo(HaveOccurred())

		content, err := ioutil.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		summary := string(content)
		Expect(summary).To(ContainSubstring("trufflehog_gadgets.txt"))
		Expect(summary).To(ContainSubstring("Found verified result"))
		Expect(summary).NotTo(ContainSubstring("Detector Type"))
		Expect(summary).To(ContainSubstring("gitleaks_gadgets.json"))
		Expect(summary).To(ContainSubstring(`[{"RuleID":"aws-access-key"}]`))
		Expect(summary).To(ContainSubstring("bytes"))
	})

	It("truncates long previews", func() {
		long := filepath.Join(dir, "patterns_gadgets.txt")
		Expect(ioutil.WriteFile(long, []byte(strings.Repeat("x", 300)+"\n"), 0644)).To(Succeed())

		path, err := summarizer.Write(logger, dir, "run", verdict, []string{long})
		Expect(err).NotTo(HaveOccurred())

		content, err := ioutil.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(string(content)).To(ContainSubstring(strings.Repeat("x", 64) + "..."))
		Expect(string(content)).NotTo(ContainSubstring(strings.Repeat("x", 65)))
	})

	Context("when the verdict passes with no flagged repositories", func() {
		BeforeEach(func() {
			verdict = gate.Verdict{TotalRepositories: 2, Pass: true}
		})

		It("omits the flagged line", func() {
			path, err := summarizer.Write(logger, dir, "run", verdict, artifacts)
			Expect(err).NotTo(HaveOccurred())

			content, err := ioutil.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())

			Expect(string(content)).To(ContainSubstring("verdict:      PASS"))
			Expect(string(content)).NotTo(ContainSubstring("flagged:"))
		})
	})

	Context("when an artifact has gone missing", func() {
		It("marks it unreadable, keeps the rest, and aggregates the error", func() {
			missing := filepath.Join(dir, "gitleaks_widgets.txt")

			path, err := summarizer.Write(logger, dir, "run", verdict, append(artifacts, missing))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("gitleaks_widgets.txt"))

			content, readErr := ioutil.ReadFile(path)
			Expect(readErr).NotTo(HaveOccurred())

			summary := string(content)
			Expect(summary).To(ContainSubstring("trufflehog_gadgets.txt"))
			Expect(summary).To(ContainSubstring("gitleaks_widgets.txt"))
			Expect(summary).To(ContainSubstring("(unreadable)"))
		})
	})

	Context("when there are no artifacts at all", func() {
		It("still writes a summary that says so", func() {
			path, err := summarizer.Write(logger, dir, "run", gate.Verdict{Pass: true}, nil)
			Expect(err).NotTo(HaveOccurred())

			content, readErr := ioutil.ReadFile(path)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(content)).To(ContainSubstring("(none)"))
		})
	})
})
