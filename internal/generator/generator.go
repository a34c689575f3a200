package generator

import (
	"ay-events-spreader/internal/event"
	"context"
	"crypto/rand"
	"errors"
	"iter"
	mrand "math/rand"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultDurationMax = 30_000
	defaultBounceRate  = 0.3

	bounceMax = 5_000
)

var ErrInvalidMode = errors.New("invalid mode")

var (
	agents = [...]string{
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
		"Mozilla/5.0 (Linux; Android 14)",
	}
	regions = [...]string{
		"EU",
		"US",
		"APAC",
		"LATAM",
	}
)

type EventGenerator struct {
	DurationMax int
	BounceRate  float32
	Interval    time.Duration

	listenersMu sync.Mutex
	listeners   []func(count int)
}

func NewEventGenerator() *EventGenerator {
	interval, _ := defaultMode.interval()

	return &EventGenerator{
		DurationMax: defaultDurationMax,
		BounceRate:  defaultBounceRate,
		Interval:    interval,
	}
}

func (g *EventGenerator) SetDurationMax(value int) *EventGenerator {
	g.DurationMax = value
	return g
}

func (g *EventGenerator) SetBounceRate(value float32) *EventGenerator {
	g.BounceRate = value
	return g
}

func (g *EventGenerator) SetInterval(value time.Duration) *EventGenerator {
	g.Interval = value
	return g
}

// SetMode выставляет интервал генерации, соответствующий режиму.
func (g *EventGenerator) SetMode(mode Mode) error {
	interval, ok := mode.interval()
	if !ok {
		zap.L().Error(ErrInvalidMode.Error(), zap.String("mode", string(mode)))
		return ErrInvalidMode
	}

	g.Interval = interval
	return nil
}

// AddPostCreateEventsListener регистрирует функцию, которая вызывается
// после генерации событий с их количеством.
func (g *EventGenerator) AddPostCreateEventsListener(fn func(count int)) {
	g.listenersMu.Lock()
	defer g.listenersMu.Unlock()

	g.listeners = append(g.listeners, fn)
}

func (g *EventGenerator) notify(count int) {
	g.listenersMu.Lock()
	listeners := g.listeners
	g.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(count)
	}
}

func (g *EventGenerator) Event() event.PageViewEvent {
	var isBounce bool

	duration := mrand.Intn(g.DurationMax) + 1

	if duration < bounceMax {
		isBounce = false
	} else {
		isBounce = mrand.Float32() < g.BounceRate
	}

	g.notify(1)

	return event.PageViewEvent{
		PageID:       uuid.NewString(),
		UserID:       uuid.NewString(),
		ViewDuration: duration,
		Timestamp:    time.Now(),
		UserAgent:    g.randomUserAgent(),
		IPAddress:    g.randomIPv4(),
		Region:       g.randomRegion(),
		IsBounce:     isBounce,
	}
}

// Events возвращает конечную последовательность из n событий.
func (g *EventGenerator) Events(n int) iter.Seq[event.PageViewEvent] {
	return func(yield func(event.PageViewEvent) bool) {
		for range n {
			if !yield(g.Event()) {
				return
			}
		}
	}
}

// Stream генерирует по событию каждые Interval,
// пока не отменён ctx или потребитель не прекратил чтение.
func (g *EventGenerator) Stream(ctx context.Context) iter.Seq[event.PageViewEvent] {
	return func(yield func(event.PageViewEvent) bool) {
		interval := g.Interval
		if interval <= 0 {
			interval = regularModeInterval
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !yield(g.Event()) {
					return
				}
			}
		}
	}
}

func (g *EventGenerator) randomUserAgent() string {
	return agents[mrand.Intn(len(agents))]
}

func (g *EventGenerator) randomRegion() string {
	return regions[mrand.Intn(len(regions))]
}

func (g *EventGenerator) randomIPv4() string {
	ip := make(net.IP, 4)
	_, _ = rand.Read(ip)
	return ip.String()
}
