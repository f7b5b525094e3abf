package gate

import (
	"sort"

	"github.com/leakhound/leakhound/results"
	"github.com/leakhound/leakhound/scanners"
)

// Verdict is the run's single pass/fail decision. Pass is true exactly when
// no repository was flagged.
type Verdict struct {
	TotalRepositories   int
	FlaggedRepositories []string
	Pass                bool
}

// Evaluate reduces the full result set to a verdict. It is a pure function
// of its input: no clock, no disk, no hidden state.
//
// A repository is flagged when any of its cells carries a verified secret,
// or when a tool-derived cell reports findings it marked unverified. Builtin
// pattern sweeps are advisory and never flag on their own.
func Evaluate(all []results.ScanResult) Verdict {
	seen := map[string]struct{}{}
	flagged := map[string]struct{}{}

	for _, result := range all {
		seen[result.RepoName] = struct{}{}

		if gates(result) {
			flagged[result.RepoName] = struct{}{}
		}
	}

	names := make([]string, 0, len(flagged))
	for name := range flagged {
		names = append(names, name)
	}
	sort.Strings(names)

	return Verdict{
		TotalRepositories:   len(seen),
		FlaggedRepositories: names,
		Pass:                len(names) == 0,
	}
}

func gates(result results.ScanResult) bool {
	if result.HasVerifiedSecret {
		return true
	}

	return result.Kind != scanners.KindBuiltin &&
		result.FindingCount > 0 &&
		result.HasUnverifiedFinding
}
