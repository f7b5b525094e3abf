package scanners

import (
	"bytes"
	"context"

	"code.cloudfoundry.org/lager"
)

// TimeoutMarker is appended to a cell's output when its deadline expires, so
// the artifact records why the cell failed.
const TimeoutMarker = "scan timed out"

type Kind int

const (
	KindContainer Kind = iota
	KindBinary
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindBinary:
		return "binary"
	case KindBuiltin:
		return "builtin"
	default:
		return "unknown"
	}
}

type Status int

const (
	StatusCompleted Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Descriptor identifies a scanner variant. ID keys result artifacts, so it
// must be stable across runs.
type Descriptor struct {
	ID   string
	Kind Kind
}

// Outcome is one invocation's raw product. Completed covers both "clean" and
// "findings present": tools signal findings through output and reserved exit
// codes, and the normalizer decides later. Report carries a structured side
// report when the variant produces one.
type Outcome struct {
	Status Status
	Output []byte
	Report []byte
}

//go:generate counterfeiter . Scanner

// Scanner executes one detection technique against one working copy.
// Available reports whether the variant's runtime dependency is usable;
// callers skip the cell rather than scan when it is not. Scan never returns
// an error: failures are encoded as a Failed outcome with whatever output
// was collected, keeping one cell's trouble out of every other cell.
type Scanner interface {
	Descriptor() Descriptor
	Available(ctx context.Context, logger lager.Logger) bool
	Scan(ctx context.Context, logger lager.Logger, workdir string) Outcome
}

func markTimeout(ctx context.Context, output []byte) []byte {
	if ctx.Err() != context.DeadlineExceeded {
		return output
	}

	if len(output) > 0 && !bytes.HasSuffix(output, []byte("\n")) {
		output = append(output, '\n')
	}
	return append(output, []byte(TimeoutMarker+"\n")...)
}
