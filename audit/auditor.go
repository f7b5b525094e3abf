package audit

import (
	"context"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"golang.org/x/sync/errgroup"

	"github.com/leakhound/leakhound/gate"
	"github.com/leakhound/leakhound/metrics"
	"github.com/leakhound/leakhound/repos"
	"github.com/leakhound/leakhound/results"
	"github.com/leakhound/leakhound/scanners"
)

//go:generate counterfeiter . Auditor

// Auditor runs every configured scanner against every configured repository,
// stores one result per cell, and reduces the stored set to a verdict.
type Auditor interface {
	Audit(ctx context.Context, logger lager.Logger, repositories []repos.Repository) (gate.Verdict, error)
}

type auditor struct {
	source   repos.Source
	scanners []scanners.Scanner
	store    *results.Store
	clock    clock.Clock
	workers  int

	scanTimer      metrics.Timer
	completedScans metrics.Counter
	skippedScans   metrics.Counter
	failedScans    metrics.Counter
	flaggedRepos   metrics.Gauge
}

// NewAuditor wires an auditor. Scanners run in the order given; repositories
// fan out across at most workers goroutines (minimum one).
func NewAuditor(
	source repos.Source,
	scannerList []scanners.Scanner,
	store *results.Store,
	clk clock.Clock,
	emitter metrics.Emitter,
	workers int,
) Auditor {
	if workers < 1 {
		workers = 1
	}

	return &auditor{
		source:   source,
		scanners: scannerList,
		store:    store,
		clock:    clk,
		workers:  workers,

		scanTimer:      emitter.Timer("leakhound.scan.duration"),
		completedScans: emitter.Counter("leakhound.scans.completed"),
		skippedScans:   emitter.Counter("leakhound.scans.skipped"),
		failedScans:    emitter.Counter("leakhound.scans.failed"),
		flaggedRepos:   emitter.Gauge("leakhound.repos.flagged"),
	}
}

func (a *auditor) Audit(ctx context.Context, logger lager.Logger, repositories []repos.Repository) (gate.Verdict, error) {
	logger = logger.Session("audit", lager.Data{
		"repositories": len(repositories),
		"workers":      a.workers,
	})
	logger.Info("started")

	start := a.clock.Now()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.workers)

	for _, repository := range repositories {
		repository := repository

		logger.Info("pending", lager.Data{"repository": repository.Name})

		group.Go(func() error {
			a.auditRepository(groupCtx, logger, repository)
			return nil
		})
	}

	group.Wait()

	verdict := gate.Evaluate(a.store.GetAll())
	a.flaggedRepos.Update(logger, float32(len(verdict.FlaggedRepositories)))

	logger.Info("done", lager.Data{
		"duration": a.clock.Since(start).String(),
		"total":    verdict.TotalRepositories,
		"flagged":  verdict.FlaggedRepositories,
		"pass":     verdict.Pass,
	})

	if err := ctx.Err(); err != nil {
		return verdict, err
	}

	return verdict, nil
}

func (a *auditor) auditRepository(ctx context.Context, logger lager.Logger, repository repos.Repository) {
	logger = logger.Session("repository", lager.Data{
		"repository": repository.Name,
	})

	logger.Info("acquiring")

	workdir, err := a.source.Acquire(ctx, logger, repository)
	if err != nil {
		logger.Error("failed-to-acquire", err)
	}

	logger.Info("scanning", lager.Data{"workdir": workdir})

	for _, scanner := range a.scanners {
		a.runCell(ctx, logger, scanner, repository, workdir)
	}

	logger.Info("done")
}

// runCell produces exactly one stored result for (scanner, repository). No
// outcome of the cell aborts the run.
func (a *auditor) runCell(ctx context.Context, logger lager.Logger, scanner scanners.Scanner, repository repos.Repository, workdir string) {
	descriptor := scanner.Descriptor()
	logger = logger.Session("cell", lager.Data{
		"scanner": descriptor.ID,
	})

	var outcome scanners.Outcome
	if scanner.Available(ctx, logger) {
		a.scanTimer.Time(logger, func() {
			outcome = scanner.Scan(ctx, logger, workdir)
		}, "scanner:"+descriptor.ID)
	} else {
		logger.Info("scanner-unavailable")
		outcome = scanners.Outcome{Status: scanners.StatusSkipped}
	}

	result := results.Normalize(descriptor, repository, outcome)

	switch result.Status {
	case scanners.StatusCompleted:
		a.completedScans.Inc(logger, "scanner:"+descriptor.ID)
	case scanners.StatusSkipped:
		a.skippedScans.Inc(logger, "scanner:"+descriptor.ID)
	case scanners.StatusFailed:
		a.failedScans.Inc(logger, "scanner:"+descriptor.ID)
	}

	if err := a.store.Put(result); err != nil {
		logger.Error("failed-to-store-result", err)
	}

	logger.Info("cell-finished", lager.Data{
		"status":   result.Status.String(),
		"findings": result.FindingCount,
	})
}
