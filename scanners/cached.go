package scanners

import (
	"context"
	"sync"

	"code.cloudfoundry.org/lager"
)

type cachedScanner struct {
	Scanner

	once      sync.Once
	available bool
}

// Cached probes the wrapped scanner's availability at most once and reuses
// the answer for the rest of the run.
func Cached(scanner Scanner) Scanner {
	return &cachedScanner{Scanner: scanner}
}

func (c *cachedScanner) Available(ctx context.Context, logger lager.Logger) bool {
	c.once.Do(func() {
		c.available = c.Scanner.Available(ctx, logger)
	})
	return c.available
}
