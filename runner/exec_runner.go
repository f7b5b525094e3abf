package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"code.cloudfoundry.org/lager"
)

type execRunner struct{}

func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, logger lager.Logger, command Command) (Result, error) {
	logger = logger.Session("run", lager.Data{
		"path": command.Path,
		"args": command.Args,
	})

	cmd := exec.CommandContext(ctx, command.Path, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = command.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Error("cut-short", ctxErr)
		return result, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Debug("exited", lager.Data{"exit-code": result.ExitCode})
			return result, nil
		}

		logger.Error("failed-to-run", err)
		return result, err
	}

	logger.Debug("exited", lager.Data{"exit-code": 0})
	return result, nil
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
