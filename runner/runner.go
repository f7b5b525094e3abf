package runner

import (
	"context"

	"code.cloudfoundry.org/lager"
)

// Command is a single external invocation: an argv vector, never a shell
// string, so arguments cannot be re-split or glob-expanded on the way out.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Combined returns stdout followed by stderr, for callers that archive one
// blob per invocation.
func (r Result) Combined() []byte {
	out := make([]byte, 0, len(r.Stdout)+len(r.Stderr))
	out = append(out, r.Stdout...)
	out = append(out, r.Stderr...)
	return out
}

//go:generate counterfeiter . Runner

// Runner executes external processes. Run returns a nil error whenever the
// process ran to completion, even with a non-zero exit code; the code is in
// Result.ExitCode. A non-nil error means the process could not be started or
// was cut short (context timeout or cancellation), and Result carries
// whatever output had been collected by then.
type Runner interface {
	Run(ctx context.Context, logger lager.Logger, command Command) (Result, error)
	LookPath(name string) (string, error)
}
