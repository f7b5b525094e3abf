package repos

import (
	"context"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/leakhound/leakhound/gitclient"
)

//go:generate counterfeiter . Source

// Source produces a local working copy for a repository: clone if absent,
// update if present. Acquire always returns the canonical working-copy path,
// even alongside an error, so a failed update still leaves the orchestrator
// something to scan.
type Source interface {
	Acquire(ctx context.Context, logger lager.Logger, repository Repository) (string, error)
}

type gitSource struct {
	gitClient gitclient.Client
	reposDir  string
	timeout   time.Duration
}

func NewGitSource(gitClient gitclient.Client, reposDir string, timeout time.Duration) Source {
	return &gitSource{
		gitClient: gitClient,
		reposDir:  reposDir,
		timeout:   timeout,
	}
}

func (s *gitSource) Acquire(ctx context.Context, logger lager.Logger, repository Repository) (string, error) {
	dest := filepath.Join(s.reposDir, repository.Name)
	logger = logger.Session("acquire", lager.Data{
		"repository":  repository.Name,
		"destination": dest,
	})

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if s.gitClient.IsRepository(dest) {
		if err := s.gitClient.Pull(ctx, logger, dest); err != nil {
			logger.Error("failed-to-update", err)
			return dest, err
		}
		return dest, nil
	}

	if err := s.gitClient.Clone(ctx, logger, repository.URL, dest); err != nil {
		logger.Error("failed-to-clone", err)
		return dest, err
	}

	return dest, nil
}
