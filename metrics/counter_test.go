package metrics_test

import (
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/metrics"
	"github.com/leakhound/leakhound/metrics/metricsfakes"
)

var _ = Describe("Counter", func() {
	var (
		metric  *metricsfakes.FakeMetric
		counter metrics.Counter
		logger  *lagertest.TestLogger
	)

	BeforeEach(func() {
		metric = &metricsfakes.FakeMetric{}
		logger = lagertest.NewTestLogger("counter")

		counter = metrics.NewCounter(metric)
	})

	It("does not emit anything if the count is zero", func() {
		counter.IncN(logger, 0)

		Expect(metric.UpdateCallCount()).To(Equal(0))
	})

	It("does not emit anything if the count is negative", func() {
		counter.IncN(logger, -4)

		Expect(metric.UpdateCallCount()).To(Equal(0))
	})

	It("can increment once", func() {
		counter.Inc(logger, "tag1", "tag2")

		Expect(metric.UpdateCallCount()).To(Equal(1))
		callLogger, callValue, tags := metric.UpdateArgsForCall(0)
		Expect(callLogger).To(Equal(logger))
		Expect(callValue).To(Equal(float32(1)))
		Expect(tags).To(ConsistOf("tag1", "tag2"))
	})

	It("can increment many times", func() {
		counter.IncN(logger, 2, "tag1", "tag2")

		Expect(metric.UpdateCallCount()).To(Equal(1))
		callLogger, callValue, tags := metric.UpdateArgsForCall(0)
		Expect(callLogger).To(Equal(logger))
		Expect(callValue).To(Equal(float32(2)))
		Expect(tags).To(ConsistOf("tag1", "tag2"))
	})
})
