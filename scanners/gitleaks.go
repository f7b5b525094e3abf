package scanners

import (
	"context"
	"io/ioutil"
	"os"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/leakhound/leakhound/runner"
)

const GitleaksID = "gitleaks"

// gitleaks exits 1 when it found leaks, which is a successful scan. Anything
// past 1 is an invocation failure.
const gitleaksLeaksExit = 1

type gitleaksScanner struct {
	runner  runner.Runner
	binary  string
	timeout time.Duration
}

// NewGitleaks scans working copies with a locally installed gitleaks binary.
// It runs the tool twice: once for the human-readable transcript, once for a
// JSON report written to a side file.
func NewGitleaks(r runner.Runner, binary string, timeout time.Duration) Scanner {
	return &gitleaksScanner{
		runner:  r,
		binary:  binary,
		timeout: timeout,
	}
}

func (s *gitleaksScanner) Descriptor() Descriptor {
	return Descriptor{ID: GitleaksID, Kind: KindBinary}
}

func (s *gitleaksScanner) Available(_ context.Context, logger lager.Logger) bool {
	if _, err := s.runner.LookPath(s.binary); err != nil {
		logger.Info("binary-not-installed", lager.Data{"binary": s.binary})
		return false
	}

	return true
}

func (s *gitleaksScanner) Scan(ctx context.Context, logger lager.Logger, workdir string) Outcome {
	logger = logger.Session("gitleaks", lager.Data{"directory": workdir})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	verbose, err := s.runner.Run(ctx, logger, runner.Command{
		Path: s.binary,
		Args: s.detectArgs(workdir, "--verbose"),
	})
	output := verbose.Combined()
	if err != nil {
		logger.Error("failed-to-run", err)
		return Outcome{Status: StatusFailed, Output: markTimeout(ctx, output)}
	}
	if verbose.ExitCode != 0 && verbose.ExitCode != gitleaksLeaksExit {
		logger.Info("exited-abnormally", lager.Data{"exit-code": verbose.ExitCode})
		return Outcome{Status: StatusFailed, Output: output}
	}

	report := s.structuredReport(ctx, logger, workdir)

	logger.Debug("done", lager.Data{"exit-code": verbose.ExitCode})
	return Outcome{Status: StatusCompleted, Output: output, Report: report}
}

// structuredReport reruns the detector with a JSON report path. The report
// enriches the result but its absence never fails a scan that already
// produced a transcript; the normalizer degrades to text heuristics.
func (s *gitleaksScanner) structuredReport(ctx context.Context, logger lager.Logger, workdir string) []byte {
	sideFile, err := ioutil.TempFile("", "gitleaks-report-*.json")
	if err != nil {
		logger.Error("failed-to-create-report-file", err)
		return nil
	}
	reportPath := sideFile.Name()
	sideFile.Close()
	defer os.Remove(reportPath)

	result, err := s.runner.Run(ctx, logger, runner.Command{
		Path: s.binary,
		Args: s.detectArgs(workdir, "--report-format", "json", "--report-path", reportPath),
	})
	if err != nil {
		logger.Error("failed-to-run-report", err)
		return nil
	}
	if result.ExitCode != 0 && result.ExitCode != gitleaksLeaksExit {
		logger.Info("report-exited-abnormally", lager.Data{"exit-code": result.ExitCode})
		return nil
	}

	report, err := ioutil.ReadFile(reportPath)
	if err != nil {
		logger.Error("failed-to-read-report", err)
		return nil
	}

	return report
}

// detectArgs builds the fixed invocation: filesystem scan of the working
// copy with history disabled, so scope stays bounded and deterministic.
func (s *gitleaksScanner) detectArgs(workdir string, extra ...string) []string {
	args := []string{"detect", "--source", workdir, "--no-git"}
	return append(args, extra...)
}
