package scanners

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/leakhound/leakhound/sniff"
)

const PatternsID = "patterns"

type patternScanner struct {
	battery *sniff.Battery
	timeout time.Duration
}

// NewPatterns wraps the in-process check battery. It needs no external tool,
// so it is always available.
func NewPatterns(battery *sniff.Battery, timeout time.Duration) Scanner {
	return &patternScanner{
		battery: battery,
		timeout: timeout,
	}
}

func (s *patternScanner) Descriptor() Descriptor {
	return Descriptor{ID: PatternsID, Kind: KindBuiltin}
}

func (s *patternScanner) Available(context.Context, lager.Logger) bool {
	return true
}

func (s *patternScanner) Scan(ctx context.Context, logger lager.Logger, workdir string) Outcome {
	logger = logger.Session("patterns", lager.Data{"directory": workdir})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sections, err := s.battery.Run(ctx, logger, workdir)
	if err != nil {
		logger.Error("failed", err)
		return Outcome{Status: StatusFailed, Output: markTimeout(ctx, []byte(err.Error()))}
	}

	return Outcome{Status: StatusCompleted, Output: sniff.RenderReport(sections)}
}
