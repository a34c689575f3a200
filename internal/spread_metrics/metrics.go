package spread_metrics

import (
	"ay-events-spreader/internal/generator"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Metrics struct {
	registry *prometheus.Registry
}

// ObserveSpreadFn учитывает результат одного распределения по корзинам.
type ObserveSpreadFn[T any] = func(buckets [][]T)

func NewMetrics() *Metrics {
	return &Metrics{
		registry: prometheus.NewRegistry(),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) CollectEventGenerator(gen *generator.EventGenerator) error {
	eventCount := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "event_generated_count",
		},
	)

	if err := m.registry.Register(eventCount); err != nil {
		zap.L().Error(err.Error())
		return err
	}

	gen.AddPostCreateEventsListener(func(count int) {
		eventCount.Add(float64(count))
	})

	return nil
}

// CollectSpread регистрирует счётчики распределения по корзинам
// и возвращает функцию, которую нужно вызывать после каждого распределения.
// Метки корзин [0, buckets) создаются сразу, чтобы пустые корзины тоже были видны.
func CollectSpread[T any](m *Metrics, buckets int) (ObserveSpreadFn[T], error) {
	items := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spread_items_total",
		},
	)
	bucketItems := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spread_bucket_items_total",
		},
		[]string{"bucket"},
	)

	for _, c := range []prometheus.Collector{items, bucketItems} {
		if err := m.registry.Register(c); err != nil {
			zap.L().Error(err.Error())
			return nil, err
		}
	}

	for i := range buckets {
		bucketItems.WithLabelValues(strconv.Itoa(i))
	}

	return func(spread [][]T) {
		for i, bucket := range spread {
			items.Add(float64(len(bucket)))
			bucketItems.WithLabelValues(strconv.Itoa(i)).Add(float64(len(bucket)))
		}
	}, nil
}
