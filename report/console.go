package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mgutz/ansi"

	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/results"
	"github.com/leakhound/leakhound/scanners"
)

var red = ansi.ColorFunc("red+b")
var green = ansi.ColorFunc("green+b")
var yellow = ansi.ColorFunc("yellow+b")

// Console renders the verdict for a human watching the run. Everything it
// prints is derived from the stored results; the log file carries the rest.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Render(all []results.ScanResult, verdict gate.Verdict) error {
	table := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "REPOSITORY\tSCANNER\tSTATUS\tFINDINGS")

	var skippedCells int
	for _, result := range all {
		if result.Status == scanners.StatusSkipped {
			skippedCells++
		}

		findings := fmt.Sprintf("%d", result.FindingCount)
		if result.HasVerifiedSecret {
			findings += " (verified)"
		}

		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n",
			result.RepoName,
			result.ScannerID,
			result.Status.String(),
			findings,
		)
	}

	if err := table.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(c.out)

	if skippedCells > 0 {
		fmt.Fprintf(c.out, "%s %d scans skipped because their scanner was unavailable\n\n", yellow("[WARN]"), skippedCells)
	}

	if verdict.Pass {
		fmt.Fprintf(c.out, "%s all %d repositories came back clean\n", green("[PASS]"), verdict.TotalRepositories)
		return nil
	}

	fmt.Fprintf(c.out, "%s %d of %d repositories flagged: %s\n",
		red("[FAIL]"),
		len(verdict.FlaggedRepositories),
		verdict.TotalRepositories,
		strings.Join(verdict.FlaggedRepositories, ", "),
	)

	c.renderAdvice()

	return nil
}

func (c *Console) renderAdvice() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Yikes! Looks like we found leaked credentials.")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "There are a few cases for what this may be:")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "1. An actual credential committed to a repository! Rotate it, scrub it")
	fmt.Fprintln(c.out, "   from history, and run the audit again.")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "2. An example credential in tests or documentation. You can use the")
	fmt.Fprintln(c.out, "   words 'fake' and/or 'example' in your credential so the builtin")
	fmt.Fprintln(c.out, "   checks ignore it.")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "3. A false positive which isn't a credential at all! Check the scanner")
	fmt.Fprintln(c.out, "   transcript in the results directory before waving it through.")
}
