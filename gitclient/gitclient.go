package gitclient

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/leakhound/leakhound/runner"
)

//go:generate counterfeiter . Client

type Client interface {
	Clone(ctx context.Context, logger lager.Logger, url, dest string) error
	Pull(ctx context.Context, logger lager.Logger, dest string) error
	IsRepository(dest string) bool
	DeletedFiles(ctx context.Context, logger lager.Logger, dest string) ([]string, error)
}

type client struct {
	runner runner.Runner
}

func New(commandRunner runner.Runner) Client {
	return &client{runner: commandRunner}
}

// Clone fetches full history: the deleted-file sweep walks every commit, so
// shallow clones are off the table.
func (c *client) Clone(ctx context.Context, logger lager.Logger, url, dest string) error {
	logger = logger.Session("clone", lager.Data{"url": url, "destination": dest})

	result, err := c.runner.Run(ctx, logger, runner.Command{
		Path: "git",
		Args: []string{"clone", "--quiet", url, dest},
	})
	if err != nil {
		return fmt.Errorf("git clone: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("git clone: exit status %d: %s", result.ExitCode, firstLine(result.Stderr))
	}

	logger.Debug("done")
	return nil
}

func (c *client) Pull(ctx context.Context, logger lager.Logger, dest string) error {
	logger = logger.Session("pull", lager.Data{"destination": dest})

	result, err := c.runner.Run(ctx, logger, runner.Command{
		Path: "git",
		Args: []string{"-C", dest, "pull", "--ff-only", "--quiet"},
	})
	if err != nil {
		return fmt.Errorf("git pull: %w", err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("git pull: exit status %d: %s", result.ExitCode, firstLine(result.Stderr))
	}

	logger.Debug("done")
	return nil
}

func (c *client) IsRepository(dest string) bool {
	info, err := os.Stat(filepath.Join(dest, ".git"))
	return err == nil && info.IsDir()
}

// DeletedFiles lists paths that were deleted at any point in the repository's
// history, in the order git reports them, each path once.
func (c *client) DeletedFiles(ctx context.Context, logger lager.Logger, dest string) ([]string, error) {
	logger = logger.Session("deleted-files", lager.Data{"destination": dest})

	result, err := c.runner.Run(ctx, logger, runner.Command{
		Path: "git",
		Args: []string{"-C", dest, "log", "--all", "--diff-filter=D", "--name-only", "--pretty=format:"},
	})
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("git log: exit status %d: %s", result.ExitCode, firstLine(result.Stderr))
	}

	seen := map[string]struct{}{}
	var files []string
	for _, line := range strings.Split(string(result.Stdout), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		files = append(files, line)
	}

	return files, nil
}

func firstLine(output []byte) string {
	trimmed := strings.TrimSpace(string(output))
	if i := strings.IndexByte(trimmed, '\n'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
