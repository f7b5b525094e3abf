package metrics_test

import (
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/leakhound/leakhound/datadog"
	"github.com/leakhound/leakhound/datadog/datadogfakes"
	"github.com/leakhound/leakhound/metrics"
)

var _ = Describe("Emitter", func() {
	var (
		logger *lagertest.TestLogger
		client *datadogfakes.FakeClient
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("emitter")
		client = &datadogfakes.FakeClient{}
	})

	Describe("BuildEmitter", func() {
		Context("when no API key is configured", func() {
			It("hands out metrics that swallow updates", func() {
				emitter := metrics.BuildEmitter("", "test")

				emitter.Counter("leakhound.scans.failed").Inc(logger)
				emitter.Gauge("leakhound.repos.flagged").Update(logger, 12)
				ran := false
				emitter.Timer("leakhound.scan.duration").Time(logger, func() {
					ran = true
				})

				Expect(ran).To(BeTrue())
			})
		})
	})

	Describe("Counter", func() {
		It("emits count metrics", func() {
			emitter := metrics.NewEmitter(client, "test")

			emitter.Counter("leakhound.scans.completed").IncN(logger, 3)

			Expect(client.BuildMetricCallCount()).To(Equal(1))
			metricType, name, value, _ := client.BuildMetricArgsForCall(0)
			Expect(metricType).To(Equal(datadog.CounterMetricType))
			Expect(name).To(Equal("leakhound.scans.completed"))
			Expect(value).To(Equal(float32(3)))
		})
	})

	Describe("Gauge", func() {
		It("emits gauge metrics", func() {
			emitter := metrics.NewEmitter(client, "test")

			emitter.Gauge("leakhound.repos.flagged").Update(logger, 2)

			Expect(client.BuildMetricCallCount()).To(Equal(1))
			metricType, name, value, _ := client.BuildMetricArgsForCall(0)
			Expect(metricType).To(Equal(datadog.GaugeMetricType))
			Expect(name).To(Equal("leakhound.repos.flagged"))
			Expect(value).To(Equal(float32(2)))
		})
	})

	Describe("Timer", func() {
		It("emits durations as gauge metrics", func() {
			emitter := metrics.NewEmitter(client, "test")

			emitter.Timer("leakhound.scan.duration").Time(logger, func() {})

			Expect(client.BuildMetricCallCount()).To(Equal(1))
			metricType, name, _, _ := client.BuildMetricArgsForCall(0)
			Expect(metricType).To(Equal(datadog.GaugeMetricType))
			Expect(name).To(Equal("leakhound.scan.duration"))
		})
	})
})
