package metrics_test

import (
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/datadog"
	"github.com/leakhound/leakhound/datadog/datadogfakes"
	"github.com/leakhound/leakhound/metrics"
)

var _ = Describe("Metric", func() {
	var (
		logger *lagertest.TestLogger

		client *datadogfakes.FakeClient
		metric metrics.Metric
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("metrics")

		client = &datadogfakes.FakeClient{}
		emitter := metrics.NewEmitter(client, "test")
		metric = metrics.NewMetric("leakhound.scans.completed", datadog.CounterMetricType, emitter)
	})

	It("builds a metric and publishes it as a series of one", func() {
		expectedMetric := datadog.Metric{Name: "leakhound.scans.completed"}
		client.BuildMetricReturns(expectedMetric)

		metric.Update(logger, 4)

		Expect(client.BuildMetricCallCount()).To(Equal(1))
		metricType, name, value, tags := client.BuildMetricArgsForCall(0)
		Expect(metricType).To(Equal(datadog.CounterMetricType))
		Expect(name).To(Equal("leakhound.scans.completed"))
		Expect(value).To(Equal(float32(4)))
		Expect(tags).To(ConsistOf("test"))

		Expect(client.PublishSeriesCallCount()).To(Equal(1))
		_, series := client.PublishSeriesArgsForCall(0)
		Expect(series).To(ConsistOf(expectedMetric))
	})

	It("tags every update with the environment", func() {
		metric.Update(logger, 3.52, "repo:gadgets", "scanner:gitleaks")

		Expect(client.BuildMetricCallCount()).To(Equal(1))
		_, _, _, tags := client.BuildMetricArgsForCall(0)
		Expect(tags).To(ConsistOf("test", "repo:gadgets", "scanner:gitleaks"))
	})
})
