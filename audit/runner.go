package audit

import (
	"context"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/repos"
)

// Runner adapts an audit to the ifrit lifecycle: signals cancel in-flight
// scans, and the verdict survives for inspection after Run returns.
type Runner struct {
	logger       lager.Logger
	auditor      Auditor
	repositories []repos.Repository

	verdict gate.Verdict
}

func NewRunner(logger lager.Logger, auditor Auditor, repositories []repos.Repository) *Runner {
	return &Runner{
		logger:       logger,
		auditor:      auditor,
		repositories: repositories,
	}
}

func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := r.logger.Session("audit-runner")
	logger.Info("started")
	defer logger.Info("done")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	close(ready)

	type outcome struct {
		verdict gate.Verdict
		err     error
	}

	done := make(chan outcome, 1)
	go func() {
		verdict, err := r.auditor.Audit(ctx, r.logger, r.repositories)
		done <- outcome{verdict: verdict, err: err}
	}()

	for {
		select {
		case signal := <-signals:
			logger.Info("signalled", lager.Data{"signal": signal.String()})
			cancel()
		case result := <-done:
			r.verdict = result.verdict
			return result.err
		}
	}
}

// Verdict is meaningful only after Run has returned.
func (r *Runner) Verdict() gate.Verdict {
	return r.verdict
}
