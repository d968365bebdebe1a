package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			registryOpt := WithPrometheusRegistry(prometheus.NewRegistry())

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(registryOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording estimate metrics", func() {
			Convey("Then it should record computed estimates", func() {
				So(func() {
					RecordEstimateComputed()
					RecordEstimateDuration(12.5)
				}, ShouldNotPanic)
			})

			Convey("Then it should record capacity errors", func() {
				So(func() { RecordCapacityError() }, ShouldNotPanic)
			})

			Convey("Then it should record convergence outcomes", func() {
				So(func() {
					RecordConvergence(6, true)
					RecordConvergence(10, false)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording batch metrics", func() {
			Convey("Then it should record batch sizes and drops", func() {
				So(func() {
					RecordBatch(100, 0)
					RecordBatch(50, 3)
				}, ShouldNotPanic)
			})
		})

		Convey("When updating catalog gauges", func() {
			So(func() { UpdateCatalogSize(8, 3) }, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("estimate", "POST", "200")
				RecordHTTPRequestDuration("estimate", "POST", "200", 4.2)
			}, ShouldNotPanic)
		})

		Convey("When updating system gauges", func() {
			So(func() {
				UpdateSystemMemoryUsage(1 << 20)
				UpdateSystemGoroutineCount(42)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global registry", t, func() {
		registry := GetRegistry()

		Convey("Then it should gather the registered metrics", func() {
			So(registry, ShouldNotBeNil)

			families, err := registry.Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
