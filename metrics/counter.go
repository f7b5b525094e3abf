package metrics

import "code.cloudfoundry.org/lager"

//go:generate counterfeiter . Counter

type Counter interface {
	Inc(lager.Logger, ...string)
	IncN(lager.Logger, int, ...string)
}

type counter struct {
	metric Metric
}

func NewCounter(metric Metric) Counter {
	return &counter{
		metric: metric,
	}
}

func (c *counter) Inc(logger lager.Logger, tags ...string) {
	c.IncN(logger, 1, tags...)
}

func (c *counter) IncN(logger lager.Logger, count int, tags ...string) {
	if count <= 0 {
		return
	}

	c.metric.Update(logger, float32(count), tags...)
}
