package report

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/leakhound/leakhound/gate"
)

const previewRunes = 64

// Summarizer writes the run-level summary artifact: the verdict plus one
// line per stored artifact with its size and the first line of its content.
type Summarizer struct {
	clock clock.Clock
}

func NewSummarizer(clk clock.Clock) *Summarizer {
	return &Summarizer{
		clock: clk,
	}
}

// Write renders the summary into dir/summary.txt and returns its path.
// Artifacts that cannot be read are listed as unreadable and their errors
// aggregated; the summary itself is still written.
func (s *Summarizer) Write(logger lager.Logger, dir string, runID string, verdict gate.Verdict, artifacts []string) (string, error) {
	logger = logger.Session("write-summary", lager.Data{
		"dir": dir,
	})

	var errs error

	var builder strings.Builder
	builder.WriteString("leakhound audit summary\n")
	builder.WriteString("=======================\n\n")
	fmt.Fprintf(&builder, "run:          %s\n", runID)
	fmt.Fprintf(&builder, "generated:    %s\n", s.clock.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&builder, "repositories: %d\n", verdict.TotalRepositories)
	fmt.Fprintf(&builder, "verdict:      %s\n", verdictWord(verdict))
	if len(verdict.FlaggedRepositories) > 0 {
		fmt.Fprintf(&builder, "flagged:      %s\n", strings.Join(verdict.FlaggedRepositories, ", "))
	}

	builder.WriteString("\nartifacts:\n\n")

	if len(artifacts) == 0 {
		builder.WriteString("  (none)\n")
	}

	for _, artifact := range artifacts {
		info, err := os.Stat(artifact)
		if err != nil {
			errs = multierror.Append(errs, err)
			fmt.Fprintf(&builder, "  %-42s (unreadable)\n", filepath.Base(artifact))
			continue
		}

		line := fmt.Sprintf("  %-42s %8d bytes", filepath.Base(artifact), info.Size())
		if p := preview(artifact); p != "" {
			line += "   " + p
		}
		builder.WriteString(line + "\n")
	}

	path := filepath.Join(dir, "summary.txt")
	if err := ioutil.WriteFile(path, []byte(builder.String()), 0644); err != nil {
		logger.Error("failed-to-write", err)
		errs = multierror.Append(errs, err)
		return "", errs
	}

	logger.Debug("written", lager.Data{"path": path})

	return path, errs
}

func verdictWord(verdict gate.Verdict) string {
	if verdict.Pass {
		return "PASS"
	}
	return "FAIL"
}

// preview returns the first line of the file, truncated. Best-effort only;
// an unreadable file previews as nothing.
func preview(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, _ := file.Read(buf)

	line := string(buf[:n])
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)

	runes := []rune(line)
	if len(runes) > previewRunes {
		line = string(runes[:previewRunes]) + "..."
	}

	return line
}
