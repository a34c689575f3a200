package main

import (
	"ay-events-spreader/internal/dispatcher"
	"ay-events-spreader/internal/event"
	"ay-events-spreader/internal/generator"
	"ay-events-spreader/internal/producer_batcher"
	"ay-events-spreader/internal/sender"
	"ay-events-spreader/internal/spread_metrics"
	"ay-events-spreader/internal/spreader"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

const (
	metricsPort = 8090

	kafkaAddr  = "kafka:9092"
	kafkaTopic = "events"

	kafkaPartitionCount = 5

	batchSize      = 300
	generatorMode  = generator.RegularMode
	dispatchWindow = 30 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := spread_metrics.NewMetrics()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", metricsPort),
		Handler: metrics.Handler(),
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal(err.Error())
		}
	}()
	defer func() {
		if err := server.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}()

	gen := generator.NewEventGenerator()
	if err := gen.SetMode(generatorMode); err != nil {
		zap.L().Fatal(err.Error())
	}

	if err := metrics.CollectEventGenerator(gen); err != nil {
		zap.L().Fatal(err.Error())
	}

	observe, err := spread_metrics.CollectSpread[event.PageViewEvent](metrics, kafkaPartitionCount)
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	snd, err := sender.DialKafkaSender(ctx, kafkaAddr, kafkaTopic, kafkaPartitionCount)
	if err != nil {
		zap.L().Fatal(err.Error())
	}
	defer func() {
		if err := snd.Close(); err != nil {
			zap.L().Error(err.Error())
		}
	}()

	spr, err := spreader.New[event.PageViewEvent](snd.Partitions())
	if err != nil {
		zap.L().Fatal(err.Error())
	}

	bat, err := producer_batcher.NewBatcher[event.PageViewEvent](
		newFlushFn(spr, dispatcher.NewDispatcher(), observe, snd.WritePartition),
	)
	if err != nil {
		zap.L().Fatal(err.Error())
	}
	if err := bat.SetFlushSize(batchSize); err != nil {
		zap.L().Fatal(err.Error())
	}

	zap.L().Info(
		"spreading events",
		zap.String("topic", kafkaTopic),
		zap.Int("partitions", spr.Count()),
		zap.Int("batch_size", batchSize),
	)

	for ev := range gen.Stream(ctx) {
		if err := bat.Push(ev); err != nil {
			zap.L().Error(err.Error())
		}
	}

	bat.Close()
	zap.L().Info("stopped")
}

// newFlushFn собирает обработчик пачки: пачка раскладывается по партициям
// по кругу, учитывается в метриках и пишется в партиции с повторами.
func newFlushFn(
	spr *spreader.Spreader[event.PageViewEvent],
	disp *dispatcher.Dispatcher,
	observe spread_metrics.ObserveSpreadFn[event.PageViewEvent],
	writeFn dispatcher.BucketWriteFn[event.PageViewEvent],
) producer_batcher.Flush[event.PageViewEvent] {
	return func(batch []event.PageViewEvent) {
		buckets := spr.SpreadSlice(batch)
		observe(buckets)

		// отдельный контекст: финальная пачка пишется уже после отмены основного
		ctx, cancel := context.WithTimeout(context.Background(), dispatchWindow)
		defer cancel()

		if err := dispatcher.Dispatch(ctx, disp, buckets, writeFn); err != nil {
			zap.L().Error(err.Error(), zap.Int("batch", len(batch)))
			return
		}

		zap.L().Info("batch dispatched", zap.Int("batch", len(batch)))
	}
}
